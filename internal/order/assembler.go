// Package order validates delivery details and turns an approved cart
// snapshot into a finalized order record.
package order

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// DeliveryDetails is the delivery form as submitted by the customer
type DeliveryDetails struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

var (
	// 1-2 letters, 1-2 digits, optional letter, optional space, digit, 2 letters
	ukPostcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d{1,2}[A-Z]?\s*\d[A-Z]{2}$`)
	// local@domain.tld shape; kept deliberately loose
	emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Assembler validates delivery forms and produces order records
type Assembler struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAssembler creates a new order assembler
func NewAssembler(logger *zap.Logger) *Assembler {
	v := validator.New()
	_ = v.RegisterValidation("uk_postcode", func(fl validator.FieldLevel) bool {
		return ukPostcodeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShapeRe.MatchString(fl.Field().String())
	})
	return &Assembler{
		validate: v,
		logger:   logger,
	}
}

// requiredFields drives the non-empty check in form order; the first
// failing rule short-circuits the whole validation.
var requiredFields = []struct {
	field string
	value func(d *DeliveryDetails) string
}{
	{"name", func(d *DeliveryDetails) string { return d.Name }},
	{"address_line1", func(d *DeliveryDetails) string { return d.AddressLine1 }},
	{"city", func(d *DeliveryDetails) string { return d.City }},
	{"postcode", func(d *DeliveryDetails) string { return d.Postcode }},
	{"phone", func(d *DeliveryDetails) string { return d.Phone }},
	{"email", func(d *DeliveryDetails) string { return d.Email }},
}

// Validate checks the delivery form. Rules run in order: required fields,
// UK postcode, 11-digit phone, email shape. The returned error names the
// first failing rule only.
func (a *Assembler) Validate(details *DeliveryDetails) error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(details)) == "" {
			return &errors.ErrValidation{Field: f.field, Message: "please fill out all required fields"}
		}
	}

	if err := a.validate.Var(details.Postcode, "uk_postcode"); err != nil {
		return &errors.ErrValidation{Field: "postcode", Message: "please enter a valid UK postcode"}
	}
	if err := a.validate.Var(details.Phone, "len=11,number"); err != nil {
		return &errors.ErrValidation{Field: "phone", Message: "please enter a valid 11-digit UK phone number"}
	}
	if err := a.validate.Var(details.Email, "email_shape"); err != nil {
		return &errors.ErrValidation{Field: "email", Message: "please enter a valid email address"}
	}
	return nil
}

// Assemble validates the form and combines it with the approved snapshot
// into an immutable order. The snapshot must not be empty.
func (a *Assembler) Assemble(details *DeliveryDetails, snapshot domain.CartSnapshot) (*domain.Order, error) {
	if snapshot.Empty() {
		return nil, &errors.ErrEmptyCart{}
	}
	if err := a.Validate(details); err != nil {
		return nil, err
	}

	items := make([]domain.CartLine, len(snapshot.Lines))
	copy(items, snapshot.Lines)

	order := &domain.Order{
		ID:               uuid.New(),
		CustomerName:     strings.TrimSpace(details.Name),
		Address:          JoinAddress(details),
		Phone:            details.Phone,
		Email:            details.Email,
		Items:            items,
		Subtotal:         snapshot.Subtotal,
		DiscountFraction: snapshot.DiscountFraction,
		DiscountLabel:    snapshot.DiscountLabel,
		Total:            snapshot.Total,
		CreatedAt:        time.Now().UTC(),
	}
	a.logger.Info("Order assembled",
		zap.String("order_id", order.ID.String()),
		zap.Int("item_count", len(order.Items)),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// JoinAddress composes the display address from the form fields. The
// optional second line is omitted when empty.
func JoinAddress(details *DeliveryDetails) string {
	parts := []string{strings.TrimSpace(details.AddressLine1)}
	if line2 := strings.TrimSpace(details.AddressLine2); line2 != "" {
		parts = append(parts, line2)
	}
	parts = append(parts, strings.TrimSpace(details.City), strings.TrimSpace(details.Postcode))
	return strings.Join(parts, ", ")
}
