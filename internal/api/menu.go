package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/store"  // Repositories
	"github.com/Rasel9360/bistro-boss-server/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging
)

const listCacheTTL = 60 * time.Second

// MenuItemRequest is the body for creating or replacing a menu item
type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Image    string  `json:"image"`
	Recipe   string  `json:"recipe"`
}

func (r MenuItemRequest) toDomain() domain.MenuItem {
	return domain.MenuItem{Name: r.Name, Category: r.Category, Price: r.Price, Image: r.Image, Recipe: r.Recipe}
}

// ListMenuHandler returns the menu newest first, served from Redis when warm
func ListMenuHandler(menu store.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var items []domain.MenuItem
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, utils.MenuCacheKey, &items); err == nil && found {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, items)
			return
		}
		items, err := menu.List(ctx)
		if err != nil {
			abortWithError(c, err, "List menu", nil)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.MenuCacheKey, items, listCacheTTL) // Cache the response for future requests
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, items)
	}
}

// GetMenuItemHandler returns one item, or null when absent
func GetMenuItemHandler(menu store.MenuRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := menu.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			abortWithError(c, err, "Get menu item", logrus.Fields{"menu_id": c.Param("id")})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateMenuItemHandler adds an item to the menu
func CreateMenuItemHandler(menu store.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MenuItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		item := req.toDomain()
		res, err := menu.Insert(c.Request.Context(), &item)
		if err != nil {
			abortWithError(c, err, "Create menu item", logrus.Fields{"name": req.Name})
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MenuCacheKey) // Invalidate menu cache
		logrus.WithFields(logrus.Fields{
			"menu_id":  *res.InsertedID,
			"name":     req.Name,
			"category": req.Category,
		}).Info("Menu item created")
		c.JSON(http.StatusOK, res)
	}
}

// UpsertMenuItemHandler sets the item's fields, creating it when absent
func UpsertMenuItemHandler(menu store.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		id := c.Param("id")
		item := req.toDomain()
		res, err := menu.Upsert(c.Request.Context(), id, &item)
		if err != nil {
			abortWithError(c, err, "Update menu item", logrus.Fields{"menu_id": id})
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MenuCacheKey)
		logrus.WithFields(logrus.Fields{"menu_id": id, "upserted": res.UpsertedCount}).Info("Menu item updated")
		c.JSON(http.StatusOK, res)
	}
}

// DeleteMenuItemHandler removes an item from the menu
func DeleteMenuItemHandler(menu store.MenuRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := menu.Delete(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err, "Delete menu item", logrus.Fields{"menu_id": id})
			return
		}
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.MenuCacheKey)
		logrus.WithFields(logrus.Fields{"menu_id": id, "deleted": res.DeletedCount}).Info("Menu item deleted")
		c.JSON(http.StatusOK, res)
	}
}

// ListReviewsHandler returns every review
func ListReviewsHandler(reviews store.ReviewRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var list []domain.Review
		if found, err := utils.GetCache(ctx, rdb, utils.ReviewsCacheKey, &list); err == nil && found {
			c.JSON(http.StatusOK, list)
			return
		}
		list, err := reviews.List(ctx)
		if err != nil {
			abortWithError(c, err, "List reviews", nil)
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.ReviewsCacheKey, list, listCacheTTL)
		c.JSON(http.StatusOK, list)
	}
}
