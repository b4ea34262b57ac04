package repository

import (
	"context"
	"fmt"

	"content_manager/internal/model"
)

// SessionRepository stores the single active token of each user
type SessionRepository interface {
	Upsert(ctx context.Context, session *model.Session) error
	Clear(ctx context.Context, userID int) error
}

type sessionRepository struct {
	db DBTX
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DBTX) SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert replaces the user's active token. Concurrent calls for the same
// user resolve as last write wins.
func (r *sessionRepository) Upsert(ctx context.Context, s *model.Session) error {
	sql := `INSERT INTO sessions (user_id, token, issued_at) VALUES ($1, $2, $3)
            ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, issued_at = EXCLUDED.issued_at`
	if _, err := r.db.Exec(ctx, sql, s.UserID, s.Token, s.IssuedAt); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Clear empties the user's active token. Clearing a user without a session
// is not an error.
func (r *sessionRepository) Clear(ctx context.Context, userID int) error {
	sql := `UPDATE sessions SET token = '' WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, sql, userID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
