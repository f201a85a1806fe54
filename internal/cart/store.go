// Package cart owns the order-in-progress: the line items and the active
// discount. The Store is the only writer of its state; every mutation runs
// behind its mutex and ends with a change notification to subscribers.
package cart

import (
	"sync"

	"github.com/iStefan20/YumTum/internal/domain"
)

// Subscriber receives a snapshot after every cart mutation
type Subscriber func(domain.CartSnapshot)

// Store maintains the cart lines and the active discount.
//
// Quantity policy: UpdateQuantity clamps at a floor of 1 and never removes
// a line. Removal happens only through RemoveItem or Clear. This is the
// documented contract; remove-on-nonpositive is deliberately not supported.
type Store struct {
	mu               sync.Mutex
	lines            []domain.CartLine
	discountFraction float64
	discountLabel    string
	subscribers      []Subscriber
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called with a snapshot after each mutation
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// AddItem adds one of the given dish to the cart. If a line for the dish
// already exists its quantity is incremented, otherwise a new line with
// quantity 1 is appended. Always succeeds.
func (s *Store) AddItem(dish domain.Dish) {
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ID == dish.ID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, domain.CartLine{
			ID:       dish.ID,
			Name:     dish.Name,
			Price:    dish.Price,
			Category: dish.Category,
			Quantity: 1,
		})
	}
	snap := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()
	notify(subs, snap)
}

// RemoveItem deletes the line with the given id. Removing an absent id is
// a no-op, not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	snap := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()
	notify(subs, snap)
}

// UpdateQuantity adjusts the quantity of the matching line by delta,
// clamped at a floor of 1. Unknown ids are ignored.
func (s *Store) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			q := s.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.lines[i].Quantity = q
			break
		}
	}
	snap := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()
	notify(subs, snap)
}

// Clear empties the cart and resets the discount
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.discountFraction = 0
	s.discountLabel = ""
	snap := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()
	notify(subs, snap)
}

// ApplyDiscount overwrites the active discount; the last writer wins and
// discounts never stack. A fraction of 0 clears the discount and the label.
func (s *Store) ApplyDiscount(fraction float64, label string) {
	s.mu.Lock()
	if fraction == 0 {
		label = ""
	}
	s.discountFraction = fraction
	s.discountLabel = label
	snap := s.snapshotLocked()
	subs := s.subscribers
	s.mu.Unlock()
	notify(subs, snap)
}

// Subtotal is the sum of price * quantity over all lines. Recomputed on
// demand; unparseable prices contribute nothing.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.lines)
}

// Total is the subtotal with the active discount applied
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.lines) * (1 - s.discountFraction)
}

// Len returns the number of lines in the cart
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Snapshot returns an immutable copy of the current cart state
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() domain.CartSnapshot {
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	sub := subtotalOf(lines)
	return domain.CartSnapshot{
		Lines:            lines,
		DiscountFraction: s.discountFraction,
		DiscountLabel:    s.discountLabel,
		Subtotal:         sub,
		Total:            sub * (1 - s.discountFraction),
	}
}

func subtotalOf(lines []domain.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		price, err := domain.ParsePrice(l.Price)
		if err != nil {
			continue
		}
		sum += price * float64(l.Quantity)
	}
	return sum
}

func notify(subs []Subscriber, snap domain.CartSnapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
