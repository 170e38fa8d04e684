package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UniScopeHQ/composer-go/internal/application/services"
)

const authorIDKey = "authorId"

// AuthMiddleware requires a valid editor bearer token and stores the
// author id on the request context.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		authorID, err := auth.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(authorIDKey, authorID)
		c.Next()
	}
}

// GetAuthorID returns the authenticated author id set by AuthMiddleware.
func GetAuthorID(c *gin.Context) (string, bool) {
	v, ok := c.Get(authorIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
