package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avilov/tasklist/internal/errs"
	"github.com/avilov/tasklist/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &model.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
		Email:    "alice@example.com",
		PwdHash:  []byte("h"),
		SaltAuth: []byte("s"),
	}

	// OK
	mock.ExpectExec(`INSERT INTO users \(id, username, email, pwd_hash, salt_auth\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
		WithArgs(u.ID, u.Username, u.Email, u.PwdHash, u.SaltAuth).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, u))

	// Duplicate username
	mock.ExpectExec(`INSERT INTO users \(id, username, email, pwd_hash, salt_auth\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
		WithArgs(u.ID, u.Username, u.Email, u.PwdHash, u.SaltAuth).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, u)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, username, email, pwd_hash, salt_auth, created_at FROM users WHERE username=\$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "pwd_hash", "salt_auth", "created_at"}).
			AddRow(id, "alice", "alice@example.com", []byte("h"), []byte("s"), time.Now().UTC()))
	u, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, "alice", u.Username)

	mock.ExpectQuery(`SELECT id, username, email, pwd_hash, salt_auth, created_at FROM users WHERE username=\$1`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
