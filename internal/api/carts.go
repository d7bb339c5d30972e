package api

import (
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/domain"
	"github.com/Rasel9360/bistro-boss-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CartRequest adds one menu item to a user's cart
type CartRequest struct {
	MenuID string  `json:"menuId" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Name   string  `json:"name" binding:"required"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" binding:"gte=0"`
}

// ListCartsHandler returns cart entries, filtered by ?email= when given
func ListCartsHandler(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := carts.List(c.Request.Context(), c.Query("email"))
		if err != nil {
			abortWithError(c, err, "List carts", logrus.Fields{"email": c.Query("email")})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AddToCartHandler stores a cart entry
func AddToCartHandler(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		entry := domain.CartEntry{MenuID: req.MenuID, Email: req.Email, Name: req.Name, Image: req.Image, Price: req.Price}
		res, err := carts.Insert(c.Request.Context(), &entry)
		if err != nil {
			abortWithError(c, err, "Add to cart", logrus.Fields{"email": req.Email, "menu_id": req.MenuID})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// DeleteCartHandler removes one cart entry
func DeleteCartHandler(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := carts.Delete(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Delete cart entry", logrus.Fields{"cart_id": id})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
