package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into the uniform envelope.
// Errors cross the API boundary as data; callers never see a stack trace.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	field := ""
	if errors.As(err, &custom) {
		field = custom.Field
	}

	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())
		c.JSON(http.StatusForbidden, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, err.Error()).WithField(field)
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrAlreadyDecided), errors.Is(err, apperrors.ErrConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeConflict, "Record has already been decided")
		c.JSON(http.StatusConflict, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrRecordNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
		c.JSON(http.StatusNotFound, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrTokenExpired):
		detail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed")
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
		c.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
	case errors.Is(err, apperrors.ErrUnknownEntryType):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, err.Error()).WithField("entry_type")
		c.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(detail))
	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeUpstreamError, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope(detail))
	}
}
