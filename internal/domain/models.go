package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dish represents a single menu entry from the static catalog.
// Price carries the display currency symbol (e.g. "£4.50") and is
// parsed only when totals are computed.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// CartLine is one dish in the cart. There is at most one line per dish ID;
// Quantity is always >= 1 for any line present in a cart.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// CartSnapshot is an immutable copy of the cart taken for checkout and
// order assembly. Lines preserve insertion order.
type CartSnapshot struct {
	Lines            []CartLine `json:"lines"`
	DiscountFraction float64    `json:"discount_fraction"`
	DiscountLabel    string     `json:"discount_label"`
	Subtotal         float64    `json:"subtotal"`
	Total            float64    `json:"total"`
}

// Empty reports whether the snapshot holds no lines.
func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

// DiscountDefinition maps a voucher code to its fraction and display label.
type DiscountDefinition struct {
	Code     string  `json:"code"`
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

// MealDeal is a bundle of dishes sold with a deal discount.
type MealDeal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Discount    float64  `json:"discount"`
	DishIDs     []string `json:"dish_ids"`
}

// Order is the finalized order record. Created once, at successful form
// submission; never mutated afterwards.
type Order struct {
	ID               uuid.UUID  `json:"id"`
	CustomerName     string     `json:"customer_name"`
	Address          string     `json:"address"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Items            []CartLine `json:"items"`
	Subtotal         float64    `json:"subtotal"`
	DiscountFraction float64    `json:"discount_fraction"`
	DiscountLabel    string     `json:"discount_label,omitempty"`
	Total            float64    `json:"total"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ParsePrice strips the leading currency symbol from a price string and
// parses the remainder. Rounding to two decimals happens only at display
// time, never here.
func ParsePrice(price string) (float64, error) {
	trimmed := strings.TrimSpace(price)
	trimmed = strings.TrimLeft(trimmed, "£$€")
	v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parse price %q: negative amount", price)
	}
	return v, nil
}

// FormatAmount renders a monetary amount for display with the given
// currency symbol and two decimals.
func FormatAmount(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
