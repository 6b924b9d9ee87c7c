package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"coffee-verifier/internal/handler/httperr"
	"coffee-verifier/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token, requiredScope string) (*jwt.Claims, error)
}

// AuthMiddleware guards machine-to-machine endpoints with scoped service tokens.
type AuthMiddleware struct {
	tokenValidator TokenValidator
	enabled        bool
}

const ctxCallerKey = "caller"

func NewAuthMiddleware(tokenValidator TokenValidator, enabled bool) *AuthMiddleware {
	if !enabled {
		slog.Warn("service token authentication is disabled")
	}
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		enabled:        enabled,
	}
}

func (m *AuthMiddleware) RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Service token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token, scope)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error(), "scope", scope)
			status, msg := http.StatusUnauthorized, "Invalid or expired token"
			if errors.Is(err, jwt.ErrMissingScope) {
				status, msg = http.StatusForbidden, "Insufficient scope"
			}
			httperr.AbortWithError(c, status, err, msg, nil)
			return
		}

		c.Set(ctxCallerKey, claims.Subject)
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

// GetCaller returns the authenticated service subject from context
func GetCaller(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return "", false
	}
	caller, ok := v.(string)
	return caller, ok
}
