// Package session manages the authentication lifecycle: registration, login,
// logout and the single persisted device session with its expiry window.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfournier/cinelog/internal/auth"
	"github.com/nfournier/cinelog/internal/models"
	"github.com/nfournier/cinelog/internal/storage"
)

// DefaultTTL is the fixed session validity window (not sliding).
const DefaultTTL = 30 * 24 * time.Hour

// DefaultSweepInterval is how often the expiry watcher revalidates the
// persisted session.
const DefaultSweepInterval = time.Minute

// Manager owns the session lifecycle. All operations are serialized by an
// internal mutex so login, logout and the background expiry sweep never
// interleave.
type Manager struct {
	store  storage.Store
	logger *slog.Logger
	ttl    time.Duration

	mu sync.Mutex
}

// NewManager creates a session manager backed by store. A zero ttl selects
// DefaultTTL.
func NewManager(store storage.Store, logger *slog.Logger, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

// Register validates the input, creates the user with a hashed password and
// immediately opens a session for them, returning it.
//
// Fails with auth.ErrInvalidInput on blank fields, auth.ErrWeakPassword on a
// too-short password and auth.ErrEmailExists when the store rejects the
// insert.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" || email == "" || password == "" {
		return nil, auth.ErrInvalidInput
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(name, email, hash)
	if err := m.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return nil, auth.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := m.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	m.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return session, nil
}

// Login authenticates the credentials and opens a session.
//
// Fails with auth.ErrInvalidCredentials both when the email is unknown and
// when the password is wrong; callers cannot tell the two apart.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	session, err := m.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	m.logger.Info("user logged in", "user_id", user.ID)
	return session, nil
}

// Logout clears the persisted session. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.ClearSession(ctx); err != nil {
		return err
	}
	m.logger.Info("session cleared")
	return nil
}

// CurrentSession loads the persisted session. An expired session is cleared
// as a side effect and reported as no session. (nil, nil) means no session.
func (m *Manager) CurrentSession(ctx context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentSessionLocked(ctx)
}

// IsSessionValid reports whether an unexpired session is persisted.
func (m *Manager) IsSessionValid(ctx context.Context) bool {
	session, err := m.CurrentSession(ctx)
	return err == nil && session != nil
}

// UpdateUser persists changed user fields. When the updated user owns the
// active session, the persisted session is rewritten to carry the new user
// while keeping the same token and timestamps.
func (m *Manager) UpdateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The persisted session's copy of the user never carries the password
	// hash; backfill it from the stored row so the full-row replace does
	// not clobber it.
	if user.PasswordHash == "" {
		existing, err := m.store.GetUserByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			user.PasswordHash = existing.PasswordHash
		}
	}

	if err := m.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return auth.ErrEmailExists
		}
		return err
	}

	session, err := m.store.GetSession(ctx)
	if err != nil {
		return err
	}
	if session != nil && session.User.ID == user.ID {
		session.User = *user
		if err := m.store.SaveSession(ctx, session); err != nil {
			return err
		}
	}

	m.logger.Info("user updated", "user_id", user.ID)
	return nil
}

// StartExpiryWatch launches a goroutine that revalidates the persisted
// session every interval and evicts it once expired. It stops when ctx is
// done. A zero interval selects DefaultSweepInterval.
func (m *Manager) StartExpiryWatch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.mu.Lock()
				if _, err := m.currentSessionLocked(ctx); err != nil {
					m.logger.Warn("session sweep failed", "error", err)
				}
				m.mu.Unlock()
			}
		}
	}()
}

// currentSessionLocked is CurrentSession without the lock; callers hold m.mu.
func (m *Manager) currentSessionLocked(ctx context.Context) (*models.Session, error) {
	session, err := m.store.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired() {
		if err := m.store.ClearSession(ctx); err != nil {
			return nil, err
		}
		m.logger.Info("expired session evicted", "user_id", session.User.ID)
		return nil, nil
	}
	return session, nil
}

// openSession creates and persists a session for user, replacing any
// previous one. Callers hold m.mu.
func (m *Manager) openSession(ctx context.Context, user *models.User) (*models.Session, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		User:      *user,
		Token:     token,
		LoginAt:   now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return session, nil
}
