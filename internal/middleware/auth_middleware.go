package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/auth"
)

// FacultyLoader resolves the acting user's directory entry from their
// authenticated email
type FacultyLoader interface {
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
}

// AuthMiddleware for authentication and acting-user resolution
type AuthMiddleware struct {
	jwtService *auth.JWTService
	directory  FacultyLoader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, directory FacultyLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		directory:  directory,
	}
}

// JWTAuth validates the bearer token and records the identity claims
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// ResolveFaculty loads the acting user's directory entry. Role and
// department always come from the directory, never from the client.
func (m *AuthMiddleware) ResolveFaculty() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextEmailKey)
		if !exists {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Identity not established")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
			return
		}

		faculty, err := m.directory.GetByEmail(c.Request.Context(), email.(string))
		if err != nil {
			if errors.Is(err, apperrors.ErrFacultyNotFound) {
				detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
					WithDetails("No faculty record for authenticated identity")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorEnvelope(detail))
				return
			}
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorEnvelope(detail))
			return
		}

		c.Set(ContextFacultyKey, faculty)
		c.Next()
	}
}

// ActingFaculty extracts the resolved faculty record from the gin context
func ActingFaculty(c *gin.Context) (*models.Faculty, bool) {
	value, exists := c.Get(ContextFacultyKey)
	if !exists {
		return nil, false
	}
	faculty, ok := value.(*models.Faculty)
	return faculty, ok
}
