package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/discount"
	"github.com/iStefan20/YumTum/internal/metric"
)

// ApplyDiscountRequest carries a voucher code
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyDealRequest carries a meal deal id
type ApplyDealRequest struct {
	DealID string `json:"deal_id" binding:"required"`
}

// HandleListDiscounts handles GET /v1/discounts
func HandleListDiscounts(discounts *discount.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"discounts": discounts.Definitions()})
	}
}

// HandleListDeals handles GET /v1/discounts/deals
func HandleListDeals(discounts *discount.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"deals": discounts.Deals()})
	}
}

// HandleApplyDiscount handles POST /v1/cart/discount
// An unknown code leaves the cart's discount state unchanged.
func HandleApplyDiscount(discounts *discount.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var req ApplyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		def, err := discounts.ApplyCode(sess.Cart, req.Code)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		metric.CartOperationsTotal.WithLabelValues("discount").Inc()
		c.JSON(http.StatusOK, gin.H{"applied": def, "cart": sess.Cart.Snapshot()})
	}
}

// HandleApplyDeal handles POST /v1/cart/deals
// Adds the deal's dishes to the cart and applies the deal discount.
func HandleApplyDeal(discounts *discount.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var req ApplyDealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		deal, err := discounts.ApplyDeal(sess.Cart, req.DealID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		metric.CartOperationsTotal.WithLabelValues("discount").Inc()
		logger.Info("Meal deal applied", zap.String("session_id", sess.ID), zap.String("deal_id", deal.ID))
		c.JSON(http.StatusOK, gin.H{"applied": deal, "cart": sess.Cart.Snapshot()})
	}
}
