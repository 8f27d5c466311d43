package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	StateTTL             = 10 * time.Minute
	stateCleanupInterval = 5 * time.Minute
)

// StateManager issues one-time OAuth state tokens.
type StateManager struct {
	states map[string]StateEntry
	mutex  sync.Mutex
	now    func() time.Time
}

type StateEntry struct {
	CreatedAt time.Time
	Provider  string
	UserAgent string
}

func NewStateManager() *StateManager {
	return &StateManager{
		states: make(map[string]StateEntry),
		now:    time.Now,
	}
}

func (sm *StateManager) GenerateState(provider, userAgent string) (string, error) {
	logger := slog.With("component", "state_manager", "operation", "generate", "provider", provider)

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Failed to generate random bytes for state token", "error", err)
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}

	state := base64.URLEncoding.EncodeToString(b)

	sm.mutex.Lock()
	sm.states[state] = StateEntry{
		CreatedAt: sm.now(),
		Provider:  provider,
		UserAgent: userAgent,
	}
	sm.mutex.Unlock()

	logger.Debug("OAuth state token generated")
	return state, nil
}

// ValidateState consumes state. A token is accepted at most once.
func (sm *StateManager) ValidateState(state, provider, userAgent string) error {
	logger := slog.With("component", "state_manager", "operation", "validate", "provider", provider)

	if state == "" {
		return fmt.Errorf("state token is required")
	}

	sm.mutex.Lock()
	entry, exists := sm.states[state]
	delete(sm.states, state)
	sm.mutex.Unlock()

	if !exists {
		logger.Warn("Invalid or expired state token")
		return fmt.Errorf("invalid or expired state token")
	}

	if age := sm.now().Sub(entry.CreatedAt); age > StateTTL {
		logger.Warn("Expired state token", "age_seconds", age.Seconds())
		return fmt.Errorf("state token has expired")
	}

	if entry.Provider != provider {
		logger.Warn("State token provider mismatch",
			"expected_provider", entry.Provider,
			"received_provider", provider)
		return fmt.Errorf("state token provider mismatch")
	}

	if entry.UserAgent != userAgent {
		logger.Warn("State token user agent mismatch",
			"stored_user_agent", entry.UserAgent,
			"received_user_agent", userAgent)
	}

	return nil
}

// Run removes expired tokens until ctx is done.
func (sm *StateManager) Run(ctx context.Context) {
	ticker := time.NewTicker(stateCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sm.cleanupExpiredStates()
		}
	}
}

func (sm *StateManager) cleanupExpiredStates() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := sm.now()
	expired := 0
	for state, entry := range sm.states {
		if now.Sub(entry.CreatedAt) > StateTTL {
			delete(sm.states, state)
			expired++
		}
	}

	if expired > 0 {
		slog.Debug("Cleaned up expired state tokens",
			"component", "state_manager",
			"expired_count", expired,
			"remaining_count", len(sm.states))
	}
	return expired
}
