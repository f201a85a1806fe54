package order

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/pkg/errors"
)

// Registry keeps finalized orders in memory for the lifetime of the
// process. Orders are never mutated after creation and never persisted.
type Registry struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

// NewRegistry creates an empty order registry
func NewRegistry() *Registry {
	return &Registry{orders: make(map[uuid.UUID]*domain.Order)}
}

// Put stores a finalized order
func (r *Registry) Put(o *domain.Order) {
	r.mu.Lock()
	r.orders[o.ID] = o
	r.mu.Unlock()
}

// GetByID returns the order with the given id
func (r *Registry) GetByID(id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	return o, nil
}

// Len returns the number of stored orders
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
