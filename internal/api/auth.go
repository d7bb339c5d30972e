package api

import (
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// TokenRequest is the identity a client asks a session token for
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"` // Identity claim
}

// AuthResponse struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// IssueTokenHandler signs a one hour session token for the posted email
func IssueTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		token, err := utils.GenerateJWT(req.Email, jwtSecret) // Generate JWT token
		if err != nil {
			abortWithError(c, err, "Token signing", logrus.Fields{"email": req.Email})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token}) // Return the token in the response
	}
}
