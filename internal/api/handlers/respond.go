package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/pkg/errors"
)

// respondError maps typed errors to HTTP responses. Everything the core
// returns is a recoverable, user-correctable input error; only unknown
// errors become 500s.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error(), "field": e.Field})
	case *errors.ErrEmptyCart:
		c.JSON(http.StatusConflict, gin.H{"error": "your cart is empty, add some items before checking out"})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case *errors.ErrUnknownDiscount:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error()})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
