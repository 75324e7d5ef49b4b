package middleware

import (
	appauth "github.com/akademik/akademik/internal/app/auth"
	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/akademik/akademik/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by Session
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRoleName = "roleName"
)

// AuthMiddleware reads session tokens and enforces route roles
type AuthMiddleware struct {
	jwtService *auth.JWTService
	authz      *appauth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, authz *appauth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		authz:      authz,
	}
}

// Session stores the caller's identity in the context when a valid token is
// presented. Requests without a token pass through unchanged.
func (m *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil || m.jwtService == nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			c.Set("sessionError", err)
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRoleName, claims.RoleName)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not allowed. It is a no-op while
// role enforcement is disabled.
func (m *AuthMiddleware) RequireRoles(allowed ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authz.Enforced() {
			c.Next()
			return
		}

		role, ok := RoleFromContext(c)
		if !ok {
			err := apperrors.ErrTokenNotFound
			if sessionErr, exists := c.Get("sessionError"); exists {
				err = sessionErr.(error)
			}
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		if err := m.authz.Authorize(role, allowed...); err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleFromContext returns the role set by Session
func RoleFromContext(c *gin.Context) (models.RoleName, bool) {
	v, exists := c.Get(ContextRoleName)
	if !exists {
		return "", false
	}
	role, ok := v.(models.RoleName)
	return role, ok
}
