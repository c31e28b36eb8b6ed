package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

// MockClassifyUsecase is a mock implementation of ClassifyUsecase
type MockClassifyUsecase struct {
	mock.Mock
}

func (m *MockClassifyUsecase) Classify(ctx context.Context, input *usecase.ClassifyInput) (*usecase.ClassifyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ClassifyOutput), args.Error(1)
}

func (m *MockClassifyUsecase) ReloadVocabulary(ctx context.Context) (*usecase.VocabularyOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.VocabularyOutput), args.Error(1)
}

func (m *MockClassifyUsecase) VocabularyInfo(ctx context.Context) (*usecase.VocabularyOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.VocabularyOutput), args.Error(1)
}

func setupTestRouter(ch *ClassifyHandler, vh *VocabularyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/classify", ch.Classify)
	r.POST("/api/v1/vocabulary/reload", vh.Reload)
	r.GET("/api/v1/vocabulary", vh.Info)
	return r
}

func TestClassify_Success(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	expectedOutput := &usecase.ClassifyOutput{
		Intent:         "place_order",
		Confidence:     1.0,
		Reason:         "order evidence score 11",
		MatchedSignals: []string{"currency", "quantity"},
	}

	mockUC.On("Classify", mock.Anything, mock.MatchedBy(func(input *usecase.ClassifyInput) bool {
		return input.Message == "2 bottles of wine, 20 euros, ship to Rome"
	})).Return(expectedOutput, nil)

	body := `{"message": "2 bottles of wine, 20 euros, ship to Rome"}`
	req, _ := http.NewRequest("POST", "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "place_order", data["intent"])
	assert.Equal(t, 1.0, data["confidence"])
	mockUC.AssertExpectations(t)
}

func TestClassify_EmptyMessage(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	expectedOutput := &usecase.ClassifyOutput{
		Intent:         "fallback",
		Confidence:     0,
		Reason:         "empty message",
		MatchedSignals: nil,
	}

	mockUC.On("Classify", mock.Anything, mock.MatchedBy(func(input *usecase.ClassifyInput) bool {
		return input.Message == ""
	})).Return(expectedOutput, nil)

	body := `{"message": ""}`
	req, _ := http.NewRequest("POST", "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "fallback", data["intent"])
	mockUC.AssertExpectations(t)
}

func TestClassify_InvalidJSON(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	body := `{"message": 42}`
	req, _ := http.NewRequest("POST", "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "INVALID_REQUEST", response.Error.Code)
	mockUC.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestClassify_MessageTooLong(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	mockUC.On("Classify", mock.Anything, mock.Anything).Return(nil, usecase.ErrMessageTooLong)

	body := `{"message": "x"}`
	req, _ := http.NewRequest("POST", "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "MESSAGE_TOO_LONG", response.Error.Code)
}

func TestReloadVocabulary_Success(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	expectedOutput := &usecase.VocabularyOutput{
		Counts:     map[string]int{"products": 10, "cities": 5},
		ReloadedAt: "2026-08-23T12:00:00Z",
	}
	mockUC.On("ReloadVocabulary", mock.Anything).Return(expectedOutput, nil)

	req, _ := http.NewRequest("POST", "/api/v1/vocabulary/reload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)

	data := response.Data.(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(10), counts["products"])
	mockUC.AssertExpectations(t)
}

func TestReloadVocabulary_SourceUnavailable(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	mockUC.On("ReloadVocabulary", mock.Anything).Return(nil, usecase.ErrVocabularyUnavailable)

	req, _ := http.NewRequest("POST", "/api/v1/vocabulary/reload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "VOCABULARY_UNAVAILABLE", response.Error.Code)
}

func TestVocabularyInfo_Success(t *testing.T) {
	mockUC := new(MockClassifyUsecase)
	router := setupTestRouter(NewClassifyHandler(mockUC), NewVocabularyHandler(mockUC))

	expectedOutput := &usecase.VocabularyOutput{
		Counts: map[string]int{"products": 3, "cities": 2, "faq_topics": 5},
	}
	mockUC.On("VocabularyInfo", mock.Anything).Return(expectedOutput, nil)

	req, _ := http.NewRequest("GET", "/api/v1/vocabulary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)

	data := response.Data.(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(5), counts["faq_topics"])
	mockUC.AssertExpectations(t)
}
