package api

import (
	"net/http"

	"github.com/Rasel9360/bistro-boss-server/internal/store"

	"github.com/gin-gonic/gin"
)

// PaymentStatsHandler returns user, menu and order counts plus total revenue
func PaymentStatsHandler(stats store.StatsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := stats.Summary(c.Request.Context())
		if err != nil {
			abortWithError(c, err, "Payment stats", nil)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// OrderStatsHandler returns quantity and revenue per menu category
func OrderStatsHandler(stats store.StatsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := stats.OrderStats(c.Request.Context())
		if err != nil {
			abortWithError(c, err, "Order stats", nil)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
