package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/store"  // Repositories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// UserRequest is the profile a client registers after signing in
type UserRequest struct {
	Email string `json:"email" binding:"required,email"` // Unique email
	Name  string `json:"name" binding:"max=200"`         // Display name
	Photo string `json:"photo" binding:"omitempty,url"`  // Avatar URL
}

// ListUsersHandler returns every user
func ListUsersHandler(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			abortWithError(c, err, "List users", nil)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AdminStatusHandler reports whether :email holds the admin role
func AdminStatusHandler(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			abortWithError(c, err, "Admin status", logrus.Fields{"email": email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
	}
}

// CreateUserHandler inserts the user unless the email is already registered
func CreateUserHandler(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		user := domain.User{Email: req.Email, Name: req.Name, Photo: req.Photo}
		res, err := users.InsertIfAbsent(c.Request.Context(), &user)
		if err != nil {
			abortWithError(c, err, "Create user", logrus.Fields{"email": req.Email})
			return
		}
		if res.InsertedID != nil {
			logrus.WithFields(logrus.Fields{
				"email":   req.Email,
				"user_id": *res.InsertedID,
			}).Info("User created")
		}
		c.JSON(http.StatusOK, res)
	}
}

// DeleteUserHandler removes a user by id
func DeleteUserHandler(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := users.Delete(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Delete user", logrus.Fields{"user_id": id})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": id, "deleted": res.DeletedCount}).Info("User deleted")
		c.JSON(http.StatusOK, res)
	}
}

// MakeAdminHandler promotes a user to the admin role
func MakeAdminHandler(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := users.MakeAdmin(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Promote user", logrus.Fields{"user_id": id})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": id, "modified": res.ModifiedCount}).Info("User promoted to admin")
		c.JSON(http.StatusOK, res)
	}
}
