package postgres

import (
	"context"
	"errors"

	"github.com/avilov/tasklist/internal/errs"
	"github.com/avilov/tasklist/internal/model"
	"github.com/jackc/pgx/v5"
)

// SessionRepo implements SessionRepository using PostgreSQL.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts a new session row.
func (r *SessionRepo) Create(ctx context.Context, s *model.Session) error {
	const q = `
INSERT INTO session_tokens (token, user_id)
VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, q, s.Token, s.UserID)
	return err
}

// Resolve maps a token to its user in a single point lookup on the token PK.
func (r *SessionRepo) Resolve(ctx context.Context, token string) (model.Identity, error) {
	const q = `
SELECT u.id, u.username
FROM session_tokens s JOIN users u ON u.id = s.user_id
WHERE s.token=$1`
	row := r.db.Pool.QueryRow(ctx, q, token)
	var ident model.Identity
	if err := row.Scan(&ident.UserID, &ident.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, errs.ErrNotFound
		}
		return model.Identity{}, err
	}
	return ident, nil
}

// Delete removes the session holding exactly this token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	const q = `DELETE FROM session_tokens WHERE token=$1`
	tag, err := r.db.Pool.Exec(ctx, q, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
