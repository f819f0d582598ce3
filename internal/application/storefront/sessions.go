package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smk/storefront/internal/domain/shared"
	"github.com/smk/storefront/internal/domain/storefront"
)

// sessionEntry pairs a controller with its idle deadline.
type sessionEntry struct {
	controller *Controller
	expiresAt  time.Time
}

// SessionManager owns every live browsing session. Sessions are in-memory
// only and expire after their idle TTL; the sweep goroutine closes expired
// controllers so their in-flight fetches are discarded.
type SessionManager struct {
	reader storefront.CatalogReader
	logger *zap.Logger
	ttl    time.Duration

	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewSessionManager creates a session manager and starts the expiry sweep.
func NewSessionManager(reader storefront.CatalogReader, logger *zap.Logger, ttl, sweepInterval time.Duration) *SessionManager {
	m := &SessionManager{
		reader:   reader,
		logger:   logger,
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
		stopChan: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.sweepLoop(sweepInterval)

	return m
}

// Create opens a new session, starts its catalog load and returns the
// session id.
func (m *SessionManager) Create() (string, error) {
	id := uuid.NewString()
	controller := NewController(m.reader, m.logger.With(zap.String("session_id", id)))

	m.mu.Lock()
	m.sessions[id] = &sessionEntry{
		controller: controller,
		expiresAt:  time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	if err := controller.Load(); err != nil {
		return "", err
	}

	m.logger.Info("session created", zap.String("session_id", id))
	return id, nil
}

// Get returns the controller for a session id and extends its idle deadline.
func (m *SessionManager) Get(id string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	entry.expiresAt = time.Now().Add(m.ttl)
	return entry.controller, nil
}

// Delete closes a session's controller and removes it. Unknown ids are an
// error so clients learn their session is gone.
func (m *SessionManager) Delete(id string) error {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return shared.ErrNotFound
	}
	entry.controller.Close()
	m.logger.Info("session deleted", zap.String("session_id", id))
	return nil
}

// Len returns the number of live sessions (for monitoring and tests).
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the sweep goroutine and closes every live session. Safe to
// call multiple times.
func (m *SessionManager) Close() error {
	m.closeOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()

		m.mu.Lock()
		for id, entry := range m.sessions {
			entry.controller.Close()
			delete(m.sessions, id)
		}
		m.mu.Unlock()
	})
	return nil
}

// sweepLoop periodically closes and removes expired sessions.
func (m *SessionManager) sweepLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *SessionManager) sweep() {
	now := time.Now()

	m.mu.Lock()
	var expired []*sessionEntry
	for id, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			expired = append(expired, entry)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, entry := range expired {
		entry.controller.Close()
	}
	if len(expired) > 0 {
		m.logger.Info("expired sessions swept", zap.Int("count", len(expired)))
	}
}
