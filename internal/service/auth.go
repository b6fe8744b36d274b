// Package service contains application services for accounts, sessions and tasks.
package service

import (
	"context"
	"fmt"

	pkgcrypto "github.com/avilov/tasklist/internal/crypto"
	"github.com/avilov/tasklist/internal/errs"
	"github.com/avilov/tasklist/internal/model"
	"github.com/avilov/tasklist/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// AuthService defines account and session operations.
type AuthService interface {
	// CreateAccount creates a new user with secure password hashing.
	CreateAccount(ctx context.Context, username, password, email string) (*model.User, error)
	// Login verifies credentials and mints a new session token.
	Login(ctx context.Context, username, password string) (model.Identity, string, error)
	// Logout deletes the session holding exactly this token.
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to its user. Called at the top of every
	// token-bearing operation.
	Resolve(ctx context.Context, token string) (model.Identity, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, sessions: sessions}
}

// CreateAccount creates a new user record with a per-user salt.
func (s *AuthServiceImpl) CreateAccount(ctx context.Context, username, password, email string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: empty username/password", errs.ErrInvalidArgument)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	saltAuth, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:       uid,
		Username: username,
		Email:    email,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), saltAuth),
		SaltAuth: saltAuth,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates and persists a fresh session. Each successful login
// mints a new token; concurrent sessions per user are allowed.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.Identity, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		// A missing user and a wrong password are indistinguishable to the caller.
		return model.Identity{}, "", errs.ErrPermissionDenied
	}

	tok, err := uuid.NewV4()
	if err != nil {
		return model.Identity{}, "", err
	}
	sess := &model.Session{Token: tok.String(), UserID: u.ID}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return model.Identity{}, "", err
	}
	return model.Identity{UserID: u.ID, Username: u.Username}, sess.Token, nil
}

// Logout deletes the session record matching the token.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve performs a single point lookup by exact token match.
func (s *AuthServiceImpl) Resolve(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, errs.ErrNotFound
	}
	return s.sessions.Resolve(ctx, token)
}
