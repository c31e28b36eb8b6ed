package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "message too long",
			err:                usecase.ErrMessageTooLong,
			expectedStatusCode: http.StatusRequestEntityTooLarge,
			expectedCode:       "MESSAGE_TOO_LONG",
			expectedMessage:    "message exceeds maximum length",
		},
		{
			name:               "vocabulary unavailable",
			err:                usecase.ErrVocabularyUnavailable,
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "VOCABULARY_UNAVAILABLE",
			expectedMessage:    "vocabulary source unavailable",
		},
		{
			name:               "wrapped vocabulary error",
			err:                fmt.Errorf("%w: connection refused", usecase.ErrVocabularyUnavailable),
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "VOCABULARY_UNAVAILABLE",
			expectedMessage:    "vocabulary source unavailable",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{
			name:               "message too long",
			err:                usecase.ErrMessageTooLong,
			expectedStatusCode: http.StatusRequestEntityTooLarge,
		},
		{
			name:               "internal error",
			err:                errors.New("internal"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleUsecaseError(c, tt.err)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
		})
	}
}

func TestHandleInvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidRequest(c, "invalid request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
