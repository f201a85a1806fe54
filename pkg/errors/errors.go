package errors

import (
	"fmt"

	"github.com/iStefan20/YumTum/internal/domain"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when user input fails a validation rule.
// Field names the first failing field; Message is user-facing.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrEmptyCart is returned when checkout is requested on an empty cart
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrInvalidStateTransition is returned when an invalid checkout transition is attempted
type ErrInvalidStateTransition struct {
	From domain.CheckoutState
	To   domain.CheckoutState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrUnknownDiscount is returned when a discount code matches no definition
type ErrUnknownDiscount struct {
	Code string
}

func (e *ErrUnknownDiscount) Error() string {
	return fmt.Sprintf("unknown discount code: %s", e.Code)
}
