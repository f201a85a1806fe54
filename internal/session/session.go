// Package session ties one cart store and one checkout gate to each
// anonymous client session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/cart"
	"github.com/iStefan20/YumTum/internal/checkout"
)

// Session is one client's order-in-progress
type Session struct {
	ID        string
	Cart      *cart.Store
	Gate      *checkout.Gate
	CreatedAt time.Time
}

// Manager owns all live sessions
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	minAge   int
	logger   *zap.Logger
}

// NewManager creates a session manager. minAge is passed through to each
// session's checkout gate.
func NewManager(minAge int, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		minAge:   minAge,
		logger:   logger,
	}
}

// GetOrCreate returns the session with the given id, creating a fresh one
// when the id is empty or unknown. The second return reports whether a
// new session was minted.
func (m *Manager) GetOrCreate(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s, false
		}
	}

	if id == "" {
		id = uuid.New().String()
	}
	store := cart.NewStore()
	s := &Session{
		ID:        id,
		Cart:      store,
		Gate:      checkout.NewGate(store, m.minAge, m.logger),
		CreatedAt: time.Now(),
	}
	m.sessions[id] = s
	m.logger.Debug("Session created", zap.String("session_id", id))
	return s, true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
