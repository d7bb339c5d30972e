package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/domain"  // Domain errors
	"github.com/Rasel9360/bistro-boss-server/internal/payment" // Gateway errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// abortWithError is the single failure path for store and gateway errors.
// Invalid ids are client errors; everything else is logged and hidden.
func abortWithError(c *gin.Context, err error, action string, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	case errors.Is(err, payment.ErrGateway):
		logrus.WithFields(fields).WithError(err).Error(action + " failed")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": payment.ErrGateway.Error()})
		return
	}
	logrus.WithFields(fields).WithError(err).Error(action + " failed") // Log the error with context
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// badRequest answers a body that failed binding or validation
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
}
