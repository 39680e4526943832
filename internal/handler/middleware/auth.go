package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tagmytrophy/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminEmailKey = "admin_email"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAdminSession accepts the admin token from the Authorization
// header (Bearer) and stores the authenticated email in the gin context.
func (m *AuthMiddleware) RequireAdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access token required",
			})
			c.Abort()
			return
		}

		email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}

	email, ok := v.(string)
	return email, ok
}
