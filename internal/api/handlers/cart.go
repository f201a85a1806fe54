package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/catalog"
	"github.com/iStefan20/YumTum/internal/metric"
)

// AddItemRequest is the payload for adding a dish to the cart
type AddItemRequest struct {
	DishID string `json:"dish_id" binding:"required"`
}

// UpdateQuantityRequest adjusts a line's quantity by a signed delta
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, sess.Cart.Snapshot())
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		dish, err := cat.ByID(req.DishID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		sess.Cart.AddItem(dish)
		metric.CartOperationsTotal.WithLabelValues("add").Inc()
		logger.Debug("Item added to cart", zap.String("session_id", sess.ID), zap.String("dish_id", dish.ID))
		c.JSON(http.StatusOK, sess.Cart.Snapshot())
	}
}

// HandleUpdateQuantity handles PATCH /v1/cart/items/:id
// Quantity is clamped at a floor of 1; decrementing never removes a line.
func HandleUpdateQuantity(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		sess.Cart.UpdateQuantity(c.Param("id"), req.Delta)
		metric.CartOperationsTotal.WithLabelValues("update_quantity").Inc()
		c.JSON(http.StatusOK, sess.Cart.Snapshot())
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id
// Removing an id that is not in the cart is a no-op, not an error.
func HandleRemoveItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		sess.Cart.RemoveItem(c.Param("id"))
		metric.CartOperationsTotal.WithLabelValues("remove").Inc()
		c.JSON(http.StatusOK, sess.Cart.Snapshot())
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		sess.Cart.Clear()
		metric.CartOperationsTotal.WithLabelValues("clear").Inc()
		c.JSON(http.StatusOK, sess.Cart.Snapshot())
	}
}
