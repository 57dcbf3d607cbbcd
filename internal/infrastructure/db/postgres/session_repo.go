package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sparcom/backend/internal/domain"
)

type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, s domain.Session) error {
	const q = `
INSERT INTO user_sessions (token, user_id, expires_at)
VALUES ($1, $2, $3);
`
	if _, err := r.db.ExecContext(ctx, q, s.Token, s.UserID, s.ExpiresAt); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

// ResolveUserID returns the user id behind a live session token. Expired
// rows are filtered here, so an expired token is indistinguishable from a
// token that never existed.
func (r *SessionRepo) ResolveUserID(ctx context.Context, token string, now time.Time) (string, error) {
	const q = `
SELECT user_id
FROM user_sessions
WHERE token = $1 AND expires_at > $2
LIMIT 1;
`
	var userID string
	err := r.db.QueryRowContext(ctx, q, token, now).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSessionInvalid()
		}
		return "", domain.ErrDBUnavailable(err)
	}
	return userID, nil
}

// Delete removes the session. Deleting an unknown token is a no-op, which
// keeps logout idempotent.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	const q = `DELETE FROM user_sessions WHERE token = $1;`
	if _, err := r.db.ExecContext(ctx, q, token); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

// DeleteExpired prunes dead sessions, returning how many rows went away.
// Wired to a periodic sweep so the table does not grow without bound.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM user_sessions WHERE expires_at <= $1;`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
