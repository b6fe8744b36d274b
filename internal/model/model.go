// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. The password is stored only as an Argon2id
// hash with a per-user salt and is never retrievable.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	Email     string
	PwdHash   []byte // Argon2id(password, SaltAuth)
	SaltAuth  []byte // per-user auth salt
	CreatedAt time.Time
}

// Session is one authenticated login instance. A user may hold any number
// of concurrent sessions; each lives until logout.
type Session struct {
	Token     string    // random uuid4 string, unique
	UserID    uuid.UUID // FK -> users.id
	CreatedAt time.Time
}

// Identity is the result of resolving a session token to its user.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// Task is a single to-do entry owned by exactly one user.
type Task struct {
	ID        int64     // PK
	OwnerID   uuid.UUID // FK -> users.id
	Owner     string    // owner username, populated on reads
	Text      string
	Checked   bool
	Private   bool
	CreatedAt time.Time // set to call time at creation
}
