package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nfournier/cinelog/internal/models"
)

// The session lives in a single-row table: one JSON blob under a fixed key,
// matching the one-live-session-per-device rule.
const sessionRowID = 1

// SaveSession persists the session, replacing any previous one.
func (s *SQLiteStore) SaveSession(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := `
		INSERT INTO session (id, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`

	if _, err := s.db.ExecContext(ctx, query, sessionRowID, payload, formatTime(time.Now())); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession loads the persisted session, or (nil, nil) if none is stored.
// Expiry is the session manager's concern; the store returns whatever was
// persisted.
func (s *SQLiteStore) GetSession(ctx context.Context) (*models.Session, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM session WHERE id = ?", sessionRowID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil // No session
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, nil
}

// ClearSession removes the persisted session. Clearing an absent session is
// a no-op.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = ?", sessionRowID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
