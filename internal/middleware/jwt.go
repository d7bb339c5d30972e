package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/Rasel9360/bistro-boss-server/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Error bodies shared by the guards
const (
	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden access"
)

// JWTAuthMiddleware validates bearer tokens and attaches the caller's identity
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
			return
		}
		// Thread the identity through the request context
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), Identity{Email: claims.Email}))
		c.Next() // Proceed to the next handler
	}
}
