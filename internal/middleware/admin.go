package middleware

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/store"  // Repositories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// AdminOnlyMiddleware checks the caller's role from the store on each request.
// It must run after JWTAuthMiddleware.
func AdminOnlyMiddleware(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c.Request.Context()) // Get identity from context
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), id.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logrus.WithFields(logrus.Fields{
				"email": id.Email,
				"error": err.Error(),
			}).Error("Admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		// Unknown users and non-admins are both forbidden
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": MsgForbidden})
			return
		}
		c.Next()
	}
}

// SelfOnly rejects requests whose :param path value differs from the caller's email
func SelfOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
			return
		}
		if c.Param(param) != id.Email {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": MsgForbidden})
			return
		}
		c.Next()
	}
}
