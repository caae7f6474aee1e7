package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tradehub/internal/infrastructure/auth"
	"tradehub/internal/shared/constants"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/utils"
)

// TokenVerifier is satisfied by *auth.JWTService.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth resolves the bearer token into the request viewer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			m.reject(c, apperrors.NewTokenMissingError(), nil)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.reject(c, apperrors.NewTokenInvalidError("invalid authorization header format"), nil)
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				m.reject(c, apperrors.NewTokenExpiredError(), err)
				return
			}
			m.reject(c, apperrors.NewTokenInvalidError(), err)
			return
		}

		viewer, err := claims.Viewer()
		if err != nil {
			m.reject(c, apperrors.NewTokenInvalidError("invalid token subject"), err)
			return
		}

		utils.SetViewer(c, viewer)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, authErr *apperrors.AuthError, cause error) {
	if authErr.SecurityEvent {
		m.logger.Warnw("rejected bearer token",
			"reason", authErr.Type,
			"client_ip", c.ClientIP(),
			"path", c.Request.URL.Path,
			"error", cause,
		)
	}
	utils.ErrorResponseWithError(c, authErr)
	c.Abort()
}

// RequireParticipant admits users and companies only.
func RequireParticipant() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := utils.GetViewer(c)
		if !ok || !viewer.Type.IsParticipant() {
			utils.ErrorResponse(c, http.StatusForbidden, "only users and companies may access this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := utils.GetViewer(c)
		if !ok || !viewer.Type.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
