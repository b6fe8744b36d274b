package postgres

import (
	"context"
	"errors"

	"github.com/avilov/tasklist/internal/errs"
	"github.com/avilov/tasklist/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// TaskRepo implements TaskRepository using PostgreSQL. Toggle and delete fold
// the ownership check into the statement itself, so a concurrent delete or a
// foreign owner both surface as zero affected rows.
type TaskRepo struct{ db *DB }

// NewTaskRepo constructs a task repository.
func NewTaskRepo(db *DB) *TaskRepo { return &TaskRepo{db: db} }

// Create inserts a new task row and returns the generated id.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) (int64, error) {
	const q = `
INSERT INTO tasks (owner_id, text, checked, private, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	var id int64
	row := r.db.Pool.QueryRow(ctx, q, t.OwnerID, t.Text, t.Checked, t.Private, t.CreatedAt)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the task matching (taskID, ownerID).
func (r *TaskRepo) Delete(ctx context.Context, ownerID uuid.UUID, taskID int64) error {
	const q = `DELETE FROM tasks WHERE id=$1 AND owner_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, taskID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ToggleChecked flips checked in place and returns the new value.
func (r *TaskRepo) ToggleChecked(ctx context.Context, ownerID uuid.UUID, taskID int64) (bool, error) {
	const q = `
UPDATE tasks SET checked = NOT checked
WHERE id=$1 AND owner_id=$2
RETURNING checked`
	return r.toggle(ctx, q, ownerID, taskID)
}

// TogglePrivate flips private in place and returns the new value.
func (r *TaskRepo) TogglePrivate(ctx context.Context, ownerID uuid.UUID, taskID int64) (bool, error) {
	const q = `
UPDATE tasks SET private = NOT private
WHERE id=$1 AND owner_id=$2
RETURNING private`
	return r.toggle(ctx, q, ownerID, taskID)
}

func (r *TaskRepo) toggle(ctx context.Context, q string, ownerID uuid.UUID, taskID int64) (bool, error) {
	var v bool
	row := r.db.Pool.QueryRow(ctx, q, taskID, ownerID)
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errs.ErrNotFound
		}
		return false, err
	}
	return v, nil
}

// GetByID returns the tasks matching the id (zero or one). Deliberately
// unfiltered: this path serves direct id lookups regardless of visibility.
func (r *TaskRepo) GetByID(ctx context.Context, taskID int64) ([]model.Task, error) {
	const q = `
SELECT t.id, t.owner_id, t.text, t.checked, t.private, t.created_at, u.username
FROM tasks t JOIN users u ON u.id = t.owner_id
WHERE t.id=$1`
	return r.list(ctx, q, taskID)
}

// ListVisible returns tasks owned by ownerID plus all non-private tasks.
func (r *TaskRepo) ListVisible(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	const q = `
SELECT t.id, t.owner_id, t.text, t.checked, t.private, t.created_at, u.username
FROM tasks t JOIN users u ON u.id = t.owner_id
WHERE t.owner_id=$1 OR t.private=false`
	return r.list(ctx, q, ownerID)
}

// ListPublic returns all non-private tasks.
func (r *TaskRepo) ListPublic(ctx context.Context) ([]model.Task, error) {
	const q = `
SELECT t.id, t.owner_id, t.text, t.checked, t.private, t.created_at, u.username
FROM tasks t JOIN users u ON u.id = t.owner_id
WHERE t.private=false`
	return r.list(ctx, q)
}

func (r *TaskRepo) list(ctx context.Context, q string, args ...any) ([]model.Task, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		var t model.Task
		if err = rows.Scan(&t.ID, &t.OwnerID, &t.Text, &t.Checked, &t.Private, &t.CreatedAt, &t.Owner); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
