package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/wayfinder/internal/logging"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/ports"
	"github.com/google/uuid"
)

// DefaultLockTTL bounds how long a distributed lock outlives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store ports.SessionStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	index   *domain.RegionIndex
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.lockTTL = ttl
	}
}

// WithIndex restricts hover and select to regions of index.
func WithIndex(index domain.RegionIndex) Option {
	return func(m *Manager) {
		m.index = &index
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithClock replaces time.Now for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new Session Manager with the given persistence store.
func NewManager(store ports.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Create starts a session with a fresh ID in the default state.
func (m *Manager) Create(ctx context.Context) (*domain.ViewSession, error) {
	s := domain.NewViewSession(m.newID())
	s.UpdatedAt = m.now().UTC()
	if err := m.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	m.logger.Debug("session created", "session_id", s.ID)
	return s, nil
}

// Load retrieves an existing session from the store.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.ViewSession, error) {
	var s *domain.ViewSession
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		s, err = m.store.Load(ctx, sessionID)
		return err
	})
	return s, err
}

// Save persists the session.
func (m *Manager) Save(ctx context.Context, s *domain.ViewSession) error {
	return m.WithLock(ctx, s.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, s)
	})
}

// Update loads the session, applies fn and saves the result while holding the session lock.
// Nothing is saved when fn fails.
func (m *Manager) Update(ctx context.Context, sessionID string, fn func(*domain.ViewSession) error) (*domain.ViewSession, error) {
	var s *domain.ViewSession
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		s, err = m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = m.now().UTC()
		return m.store.Save(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Apply performs one viewer action on a session.
func (m *Manager) Apply(ctx context.Context, sessionID string, action Action, value string) (*domain.ViewSession, error) {
	if m.index != nil && action.TakesRegion() {
		if _, ok := m.index.Find(value); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, value)
		}
	}
	s, err := m.Update(ctx, sessionID, func(s *domain.ViewSession) error {
		return Apply(s, action, value)
	})
	if err != nil {
		return nil, err
	}
	m.logger.Debug("session updated", "session_id", sessionID, "action", string(action), "value", value)
	return s, nil
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying session store.
func (m *Manager) Store() ports.SessionStore {
	return m.store
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// IsNotFound reports whether err means the session does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound)
}
