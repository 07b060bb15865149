package middleware

import (
	"strings"

	"agencia_backend/internal/auth"
	"agencia_backend/internal/logger"
	"agencia_backend/internal/models"
	"agencia_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request from the session cookie, falling
// back to a Bearer header for non-browser clients. On success it stores
// userID and role in the gin context and tags the request context for the
// logger.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireRoles gates a route group to the given roles. The 403 body carries
// the Spanish message the admin frontend displays verbatim.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role := models.UserRole(c.GetString("role"))
		if !roleSet[role] {
			apperrors.HandleError(c, apperrors.ErrNoAutorizado)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID, or "" outside AuthMiddleware.
func GetUserID(c *gin.Context) string {
	return c.GetString("userID")
}
