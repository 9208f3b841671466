package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"vaultdiff/internal/domain"
	"vaultdiff/internal/logging"
)

// SessionManager owns the single active comparison view. Opening a new
// session always replaces the previous one: last writer wins, and the
// superseded session's pending decision resolves to false so any workflow
// suspended on it unwinds instead of hanging.
type SessionManager struct {
	mu      sync.Mutex
	current *domain.ComparisonSession
	logger  logging.Logger
}

// NewSessionManager creates an empty session manager
func NewSessionManager(logger logging.Logger) *SessionManager {
	return &SessionManager{logger: logger}
}

// Open creates a session for the comparison and makes it current
func (m *SessionManager) Open(comp domain.Comparison) *domain.ComparisonSession {
	sess := &domain.ComparisonSession{
		ID:         uuid.NewString(),
		Comparison: comp,
		Decision:   domain.NewReviewDecision(),
	}

	m.mu.Lock()
	prev := m.current
	m.current = sess
	m.mu.Unlock()

	if prev != nil {
		prev.Continue(false)
		m.logger.Debug(context.Background(), "comparison session superseded", logging.Fields{
			"superseded": prev.ID,
			"current":    sess.ID,
		})
	}
	return sess
}

// Current returns the active session, or nil when none is open
func (m *SessionManager) Current() *domain.ComparisonSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Resolve completes the decision of the session with the given ID and
// clears it if it is still current. Resolving a superseded session is a
// no-op: its decision was already settled when it was replaced.
func (m *SessionManager) Resolve(id string, shouldContinue bool) {
	m.mu.Lock()
	sess := m.current
	if sess == nil || sess.ID != id {
		m.mu.Unlock()
		return
	}
	m.current = nil
	m.mu.Unlock()

	sess.Continue(shouldContinue)
	m.logger.Debug(context.Background(), "comparison session resolved", logging.Fields{
		"session":  id,
		"continue": shouldContinue,
	})
}

// Shutdown resolves any open session to false. Called when the host
// surface goes away so suspended workflows terminate.
func (m *SessionManager) Shutdown() {
	m.mu.Lock()
	sess := m.current
	m.current = nil
	m.mu.Unlock()

	if sess != nil {
		sess.Continue(false)
	}
}
