package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"forbidden", apperrors.NewForbiddenError("no reviewing role"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"bad request", apperrors.NewBadRequestError("startDate must be YYYY-MM-DD"), http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"already decided", apperrors.ErrAlreadyDecided, http.StatusConflict, dto.ErrorCodeConflict},
		{"record not found", apperrors.ErrRecordNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"faculty not found", apperrors.ErrFacultyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"unknown entry type", apperrors.ErrUnknownEntryType, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)

			require.Equal(t, tt.wantStatus, recorder.Code)

			var envelope dto.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			require.Nil(t, envelope.Data)
			require.NotNil(t, envelope.Error)
			require.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestHandleAPIErrorCarriesField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, apperrors.NewBadRequestError("department is required for editors").WithField("department"))

	var envelope dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Equal(t, "department", envelope.Error.Field)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Generated when absent
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(recorder, req)
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	// Echoed when supplied
	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(recorder, req)
	require.Equal(t, "req-123", recorder.Header().Get("X-Request-ID"))
}
