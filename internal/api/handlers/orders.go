package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/metric"
	"github.com/iStefan20/YumTum/internal/order"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// HandleSubmitOrder handles POST /v1/orders
// Requires an approved checkout gate. On success the cart is cleared, the
// gate resets to idle, and the finalized order is returned.
func HandleSubmitOrder(assembler *order.Assembler, registry *order.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var details order.DeliveryDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		snapshot, approved := sess.Gate.ApprovedSnapshot()
		if !approved {
			c.JSON(http.StatusConflict, gin.H{"error": "checkout has not been approved for this session"})
			return
		}

		o, err := assembler.Assemble(&details, snapshot)
		if err != nil {
			// Form state stays with the client; nothing to roll back here.
			respondError(c, logger, err)
			return
		}

		registry.Put(o)
		sess.Cart.Clear()
		sess.Gate.Reset()
		metric.OrdersPlacedTotal.Inc()
		logger.Info("Order placed",
			zap.String("session_id", sess.ID),
			zap.String("order_id", o.ID.String()),
			zap.Float64("total", o.Total),
		)
		c.JSON(http.StatusCreated, o)
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(registry *order.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, logger, &errors.ErrValidation{Field: "id", Message: "order id must be a UUID"})
			return
		}

		o, err := registry.GetByID(id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
