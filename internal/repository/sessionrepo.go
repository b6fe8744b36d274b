package repository

import (
	"context"

	"github.com/avilov/tasklist/internal/model"
)

// SessionRepository maps opaque tokens to users.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, s *model.Session) error
	// Resolve returns the identity behind a token in a single point lookup,
	// or errs.ErrNotFound when no session holds that token.
	Resolve(ctx context.Context, token string) (model.Identity, error)
	// Delete removes the session with exactly this token.
	// Returns errs.ErrNotFound when no such session exists.
	Delete(ctx context.Context, token string) error
}
