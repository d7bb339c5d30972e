package api

import (
	"net/http" // HTTP status codes
	"time"     // Payment timestamps

	"github.com/Rasel9360/bistro-boss-server/internal/domain"  // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/payment" // Payment gateway
	"github.com/Rasel9360/bistro-boss-server/internal/store"   // Repositories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// IntentRequest carries the decimal amount to charge
type IntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"` // Charge amount
}

// PaymentRequest settles a set of cart entries
type PaymentRequest struct {
	Email         string    `json:"email" binding:"required,email"`                 // Paying user
	Price         float64   `json:"price" binding:"required,gt=0"`                  // Total charged
	TransactionID string    `json:"transactionId" binding:"required"`               // Gateway transaction id
	Date          time.Time `json:"date"`                                           // Payment time, defaults to now
	CartIDs       []string  `json:"cartIds" binding:"required,min=1,dive,required"` // Cart entries being settled
	MenuItemIDs   []string  `json:"menuItemIds" binding:"required,dive,required"`   // Ordered menu items
	Status        string    `json:"status"`                                         // Order status, defaults to pending
}

// CreatePaymentIntentHandler asks the gateway for a card intent and returns its client secret
func CreatePaymentIntentHandler(gateway payment.IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IntentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		secret, err := gateway.CreateIntent(c.Request.Context(), req.Price)
		if err != nil {
			abortWithError(c, err, "Create payment intent", logrus.Fields{"price": req.Price})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// PaymentHistoryHandler returns the caller's payments newest first
func PaymentHistoryHandler(payments store.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		list, err := payments.ListByEmail(c.Request.Context(), email)
		if err != nil {
			abortWithError(c, err, "Payment history", logrus.Fields{"email": email})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// SettlePaymentHandler records a payment and then deletes the carts it settles.
// The two writes are independent: if the delete fails the payment stays and
// the carts remain, which is logged for manual cleanup.
func SettlePaymentHandler(payments store.PaymentRepository, carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p := domain.Payment{
			Email:         req.Email,
			Price:         req.Price,
			TransactionID: req.TransactionID,
			Date:          req.Date,
			CartIDs:       req.CartIDs,
			MenuItemIDs:   req.MenuItemIDs,
			Status:        req.Status,
		}
		if p.Date.IsZero() {
			p.Date = time.Now().UTC()
		}
		if p.Status == "" {
			p.Status = domain.PaymentStatusPending
		}
		// Reject malformed cart ids before anything is written
		if err := carts.ValidateIDs(req.CartIDs); err != nil {
			abortWithError(c, err, "Validate cart ids", logrus.Fields{"cart_ids": req.CartIDs})
			return
		}
		ctx := c.Request.Context()
		paymentResult, err := payments.Insert(ctx, &p)
		if err != nil {
			abortWithError(c, err, "Record payment", logrus.Fields{
				"email":          req.Email,
				"transaction_id": req.TransactionID,
			})
			return
		}
		deleteResult, err := carts.DeleteMany(ctx, req.CartIDs)
		if err != nil {
			abortWithError(c, err, "Settle carts", logrus.Fields{
				"payment_id": *paymentResult.InsertedID,
				"cart_ids":   req.CartIDs,
			})
			return
		}
		// Log successful settlement
		logrus.WithFields(logrus.Fields{
			"payment_id":     *paymentResult.InsertedID,
			"email":          req.Email,
			"price":          req.Price,
			"transaction_id": req.TransactionID,
			"carts_deleted":  deleteResult.DeletedCount,
		}).Info("Payment settled")
		c.JSON(http.StatusOK, gin.H{"paymentResult": paymentResult, "deleteResult": deleteResult})
	}
}
