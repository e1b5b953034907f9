package middleware

import (
	"net/http"
	"strings"

	"ferapp_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT authenticates the request by Bearer token and stores the owner id
// in the gin context under "owner_id". Mutating routes fail closed
// without it.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		ownerID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("owner_id", ownerID)
		c.Next()
	}
}
