package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

// VocabularyHandler handles vocabulary-related HTTP requests
type VocabularyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(classifyUC usecase.ClassifyUsecase) *VocabularyHandler {
	return &VocabularyHandler{
		classifyUC: classifyUC,
	}
}

// Reload handles POST /api/v1/vocabulary/reload
func (h *VocabularyHandler) Reload(c *gin.Context) {
	output, err := h.classifyUC.ReloadVocabulary(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondOK(c, output)
}

// Info handles GET /api/v1/vocabulary
func (h *VocabularyHandler) Info(c *gin.Context) {
	output, err := h.classifyUC.VocabularyInfo(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondOK(c, output)
}
