package repository

import (
	"context"

	"github.com/avilov/tasklist/internal/model"
	"github.com/gofrs/uuid/v5"
)

// TaskRepository provides task storage. All mutations are owner-scoped: the
// ownership filter runs inside the same statement, so a task belonging to
// another user reports errs.ErrNotFound rather than leaking its existence.
type TaskRepository interface {
	// Create inserts a new task and returns its id.
	Create(ctx context.Context, t *model.Task) (int64, error)
	// Delete removes the task matching (taskID, ownerID).
	Delete(ctx context.Context, ownerID uuid.UUID, taskID int64) error
	// ToggleChecked flips the checked flag of the task matching
	// (taskID, ownerID) and returns the new value.
	ToggleChecked(ctx context.Context, ownerID uuid.UUID, taskID int64) (bool, error)
	// TogglePrivate flips the private flag of the task matching
	// (taskID, ownerID) and returns the new value.
	TogglePrivate(ctx context.Context, ownerID uuid.UUID, taskID int64) (bool, error)
	// GetByID returns the tasks matching the id, zero or one. No ownership
	// or privacy filter is applied on this path.
	GetByID(ctx context.Context, taskID int64) ([]model.Task, error)
	// ListVisible returns tasks that are owned by ownerID or not private.
	// A nil owner id matches no rows and degrades to public-only.
	ListVisible(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error)
	// ListPublic returns all tasks with private=false.
	ListPublic(ctx context.Context) ([]model.Task, error)
}
