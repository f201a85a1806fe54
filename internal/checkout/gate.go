// Package checkout implements the age-verification gate that sits between
// the cart and order assembly. A checkout request is classified against
// the cart contents; carts holding restricted items must pass a birth-date
// check before the gate approves.
package checkout

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/cart"
	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// RestrictedCategories are catalog categories that always require age
// verification.
var RestrictedCategories = map[string]struct{}{
	"Alcohol":          {},
	"Alcoholic Drinks": {},
}

// RestrictedNames lists alcoholic dishes whose catalog category does not
// mark them as alcohol. Tagging in the menu data is inconsistent, so both
// checks run; exact, case-sensitive match.
var RestrictedNames = map[string]struct{}{
	"Palincă":       {},
	"Vin Fiert":     {},
	"Sake":          {},
	"Ouzo":          {},
	"Margarita":     {},
	"Tsingtao Beer": {},
}

// IsRestricted reports whether a cart line requires age verification
func IsRestricted(line domain.CartLine) bool {
	if _, ok := RestrictedCategories[line.Category]; ok {
		return true
	}
	_, ok := RestrictedNames[line.Name]
	return ok
}

// Gate runs the checkout state machine for a single cart. All entry
// points share the gate's mutex, so transitions are serialized.
type Gate struct {
	mu       sync.Mutex
	store    *cart.Store
	state    domain.CheckoutState
	snapshot domain.CartSnapshot
	minAge   int
	logger   *zap.Logger
	now      func() time.Time
}

// NewGate creates an idle gate over the given cart store
func NewGate(store *cart.Store, minAge int, logger *zap.Logger) *Gate {
	return &Gate{
		store:  store,
		state:  domain.CheckoutStateIdle,
		minAge: minAge,
		logger: logger,
		now:    time.Now,
	}
}

// State returns the current checkout state
func (g *Gate) State() domain.CheckoutState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// ApprovedSnapshot returns the cart snapshot captured at approval.
// Only meaningful while the gate is in the Approved state.
func (g *Gate) ApprovedSnapshot() (domain.CartSnapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != domain.CheckoutStateApproved {
		return domain.CartSnapshot{}, false
	}
	return g.snapshot, true
}

// RequestCheckout starts a checkout attempt. An empty cart is rejected
// before any transition happens. Carts with no restricted lines are
// approved directly; otherwise the gate awaits a birth date.
func (g *Gate) RequestCheckout() (domain.CheckoutState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.store.Snapshot()
	if snap.Empty() {
		return g.state, &errors.ErrEmptyCart{}
	}

	if err := g.transitionLocked(domain.CheckoutStateEvaluating); err != nil {
		return g.state, err
	}

	restricted := false
	for _, line := range snap.Lines {
		if IsRestricted(line) {
			restricted = true
			break
		}
	}

	if !restricted {
		g.snapshot = snap
		if err := g.transitionLocked(domain.CheckoutStateApproved); err != nil {
			return g.state, err
		}
		g.logger.Info("Checkout approved without verification", zap.Int("line_count", len(snap.Lines)))
		return g.state, nil
	}

	if err := g.transitionLocked(domain.CheckoutStateAwaitingVerification); err != nil {
		return g.state, err
	}
	g.logger.Info("Checkout awaiting age verification", zap.Int("line_count", len(snap.Lines)))
	return g.state, nil
}

// SubmitBirthDate resolves a pending verification. Age is counted in
// whole years elapsed as of today; exactly the minimum age on the day
// passes. A rejected attempt may be retried with another date.
func (g *Gate) SubmitBirthDate(birthDate time.Time) (domain.CheckoutState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != domain.CheckoutStateAwaitingVerification && g.state != domain.CheckoutStateRejected {
		return g.state, &errors.ErrInvalidStateTransition{From: g.state, To: domain.CheckoutStateApproved}
	}

	today := g.now()
	if birthDate.After(today) {
		return g.state, &errors.ErrValidation{Field: "birth_date", Message: "birth date cannot be in the future"}
	}

	if g.state == domain.CheckoutStateRejected {
		// Retry path loops back through verification.
		if err := g.transitionLocked(domain.CheckoutStateAwaitingVerification); err != nil {
			return g.state, err
		}
	}

	age := AgeOn(birthDate, today)
	if age >= g.minAge {
		g.snapshot = g.store.Snapshot()
		if err := g.transitionLocked(domain.CheckoutStateApproved); err != nil {
			return g.state, err
		}
		g.logger.Info("Age verification passed", zap.Int("age", age))
		return g.state, nil
	}

	if err := g.transitionLocked(domain.CheckoutStateRejected); err != nil {
		return g.state, err
	}
	g.logger.Info("Age verification failed", zap.Int("age", age), zap.Int("min_age", g.minAge))
	return g.state, nil
}

// Cancel abandons the checkout attempt. The cart is left untouched and
// the gate returns to Idle.
func (g *Gate) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == domain.CheckoutStateIdle {
		return nil
	}
	if g.state == domain.CheckoutStateAwaitingVerification || g.state == domain.CheckoutStateRejected {
		if err := g.transitionLocked(domain.CheckoutStateCancelled); err != nil {
			return err
		}
	}
	g.state = domain.CheckoutStateIdle
	g.snapshot = domain.CartSnapshot{}
	g.logger.Info("Checkout cancelled")
	return nil
}

// Reset returns an approved gate to Idle after the order is finalized
func (g *Gate) Reset() {
	g.mu.Lock()
	g.state = domain.CheckoutStateIdle
	g.snapshot = domain.CartSnapshot{}
	g.mu.Unlock()
}

func (g *Gate) transitionLocked(to domain.CheckoutState) error {
	if !g.state.CanTransitionTo(to) {
		return &errors.ErrInvalidStateTransition{From: g.state, To: to}
	}
	g.state = to
	return nil
}

// AgeOn returns the whole years elapsed between birth and the given day:
// the year difference, decremented when the month/day has not yet come
// around. Floor of elapsed time, not calendar-year subtraction.
func AgeOn(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		years--
	}
	return years
}
