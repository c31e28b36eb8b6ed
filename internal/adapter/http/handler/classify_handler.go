package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

// ClassifyHandler handles classification-related HTTP requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{
		classifyUC: classifyUC,
	}
}

// classifyRequest represents the request body for classifying a message.
// Message is deliberately not required: an empty message is a valid input
// and classifies as a zero-confidence fallback.
type classifyRequest struct {
	Message string `json:"message"`
}

// Classify handles POST /api/v1/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleInvalidRequest(c, "invalid request body: "+err.Error())
		return
	}

	output, err := h.classifyUC.Classify(c.Request.Context(), &usecase.ClassifyInput{
		Message: req.Message,
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondOK(c, output)
}
