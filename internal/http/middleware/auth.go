package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/services"
)

const usernameKey = "username"

type TokenVerifier interface {
	Verify(token string) (services.Claims, error)
}

// AuthRequired rejects requests without a valid "Bearer" token.
func AuthRequired(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}
		claims, err := v.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

func GetUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
