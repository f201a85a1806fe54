package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/internal/metric"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// BirthDateRequest carries the verification birth date as YYYY-MM-DD
type BirthDateRequest struct {
	BirthDate string `json:"birth_date" binding:"required"`
}

func outcomeLabel(state domain.CheckoutState) string {
	return strings.ToLower(string(state))
}

// HandleRequestCheckout handles POST /v1/checkout
func HandleRequestCheckout(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		tr := otel.Tracer("checkout")
		_, span := tr.Start(c.Request.Context(), "RequestCheckout")
		defer span.End()
		span.SetAttributes(attribute.String("session_id", sess.ID))

		state, err := sess.Gate.RequestCheckout()
		if err != nil {
			if _, empty := err.(*errors.ErrEmptyCart); empty {
				metric.CheckoutOutcomesTotal.WithLabelValues("empty_cart").Inc()
			}
			respondError(c, logger, err)
			return
		}
		span.SetAttributes(attribute.String("state", string(state)))
		metric.CheckoutOutcomesTotal.WithLabelValues(outcomeLabel(state)).Inc()
		c.JSON(http.StatusOK, gin.H{"state": state})
	}
}

// HandleSubmitBirthDate handles POST /v1/checkout/birth-date
func HandleSubmitBirthDate(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		var req BirthDateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
			return
		}

		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			respondError(c, logger, &errors.ErrValidation{Field: "birth_date", Message: "birth date must be formatted YYYY-MM-DD"})
			return
		}

		state, err := sess.Gate.SubmitBirthDate(birthDate)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		metric.CheckoutOutcomesTotal.WithLabelValues(outcomeLabel(state)).Inc()
		if state == domain.CheckoutStateRejected {
			c.JSON(http.StatusOK, gin.H{
				"state":   state,
				"message": "you must be of legal age to order these items; remove them or try again",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": state})
	}
}

// HandleCancelCheckout handles POST /v1/checkout/cancel
// The cart is left untouched; the gate returns to idle.
func HandleCancelCheckout(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}

		if err := sess.Gate.Cancel(); err != nil {
			respondError(c, logger, err)
			return
		}
		metric.CheckoutOutcomesTotal.WithLabelValues("cancelled").Inc()
		c.JSON(http.StatusOK, gin.H{"state": sess.Gate.State()})
	}
}
