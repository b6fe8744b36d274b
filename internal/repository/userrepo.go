// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/avilov/tasklist/internal/model"
)

// UserRepository provides account storage.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrConflict when the username is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
