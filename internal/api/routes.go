package api

import (
	"net/http" // HTTP status codes

	"github.com/Rasel9360/bistro-boss-server/internal/middleware" // Guards
	"github.com/Rasel9360/bistro-boss-server/internal/payment"    // Payment gateway
	"github.com/Rasel9360/bistro-boss-server/internal/store"      // Repositories

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Deps are the process-wide collaborators handed to every handler
type Deps struct {
	Store     store.Store           // Repositories
	Gateway   payment.IntentCreator // Payment intents
	Cache     *redis.Client         // Optional read cache
	JWTSecret string                // Token signing key
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	verifyToken := middleware.JWTAuthMiddleware(d.JWTSecret)      // Authenticated
	verifyAdmin := middleware.AdminOnlyMiddleware(d.Store.Users) // Admin-only, after verifyToken
	selfEmail := middleware.SelfOnly("email")                    // Same-identity on :email

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Bistro boss is running") }) // Liveness

	// Auth routes
	r.POST("/jwt", IssueTokenHandler(d.JWTSecret))

	// User routes
	r.GET("/users", verifyToken, verifyAdmin, ListUsersHandler(d.Store.Users))
	r.GET("/users/admin/:email", verifyToken, selfEmail, AdminStatusHandler(d.Store.Users))
	r.POST("/users", CreateUserHandler(d.Store.Users))
	r.DELETE("/users/:id", verifyToken, verifyAdmin, DeleteUserHandler(d.Store.Users))
	r.PATCH("/users/admin/:id", verifyToken, verifyAdmin, MakeAdminHandler(d.Store.Users))

	// Menu routes
	r.GET("/menu", ListMenuHandler(d.Store.Menu, d.Cache))
	r.GET("/menu/:id", GetMenuItemHandler(d.Store.Menu))
	r.PUT("/menu/:id", UpsertMenuItemHandler(d.Store.Menu, d.Cache))
	r.POST("/menu", verifyToken, verifyAdmin, CreateMenuItemHandler(d.Store.Menu, d.Cache))
	r.DELETE("/menu/:id", verifyToken, verifyAdmin, DeleteMenuItemHandler(d.Store.Menu, d.Cache))

	r.GET("/reviews", ListReviewsHandler(d.Store.Reviews, d.Cache))

	// Cart routes
	r.GET("/carts", ListCartsHandler(d.Store.Carts))
	r.POST("/carts", AddToCartHandler(d.Store.Carts))
	r.DELETE("/carts/:id", DeleteCartHandler(d.Store.Carts))

	// Payment routes
	r.POST("/create-payment-intent", CreatePaymentIntentHandler(d.Gateway))
	r.GET("/payments/:email", verifyToken, selfEmail, PaymentHistoryHandler(d.Store.Payments))
	r.POST("/payments", SettlePaymentHandler(d.Store.Payments, d.Store.Carts))

	// Stats routes
	r.GET("/payment-stats", PaymentStatsHandler(d.Store.Stats))
	r.GET("/order-stats", OrderStatsHandler(d.Store.Stats))
}
