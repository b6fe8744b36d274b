package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/avilov/tasklist/internal/errs"
	"github.com/avilov/tasklist/internal/model"
	"github.com/avilov/tasklist/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// MaxTaskText is the task body length bound, in runes.
const MaxTaskText = 200

// TaskService defines task CRUD and the visibility-filtered listing.
// Every mutation resolves the token first and hard-fails on a bad token;
// List degrades to anonymous visibility instead.
type TaskService interface {
	// Add creates a task owned by the token's user, stamped with call time.
	Add(ctx context.Context, token, text string, checked, private bool) (int64, error)
	// Delete removes a task owned by the token's user.
	Delete(ctx context.Context, token string, taskID int64) error
	// ToggleChecked flips the checked flag and returns the new value.
	ToggleChecked(ctx context.Context, token string, taskID int64) (bool, error)
	// TogglePrivate flips the private flag and returns the new value.
	TogglePrivate(ctx context.Context, token string, taskID int64) (bool, error)
	// List returns tasks by branch precedence: explicit id first, then
	// token-scoped visibility, then public only.
	List(ctx context.Context, id *int64, token string) ([]model.Task, error)
}

type TaskServiceImpl struct {
	auth  AuthService
	tasks repository.TaskRepository
}

// NewTaskService constructs TaskService with required dependencies.
func NewTaskService(auth AuthService, tasks repository.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{auth: auth, tasks: tasks}
}

// Add creates a task after resolving the owner.
func (s *TaskServiceImpl) Add(ctx context.Context, token, text string, checked, private bool) (int64, error) {
	ident, err := s.auth.Resolve(ctx, token)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, fmt.Errorf("%w: empty text", errs.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(text) > MaxTaskText {
		return 0, fmt.Errorf("%w: text longer than %d characters", errs.ErrInvalidArgument, MaxTaskText)
	}
	t := &model.Task{
		OwnerID:   ident.UserID,
		Text:      text,
		Checked:   checked,
		Private:   private,
		CreatedAt: time.Now().UTC(),
	}
	return s.tasks.Create(ctx, t)
}

// Delete removes an owned task. The ownership filter lives in the storage
// statement, so foreign task ids come back as ErrNotFound.
func (s *TaskServiceImpl) Delete(ctx context.Context, token string, taskID int64) error {
	ident, err := s.auth.Resolve(ctx, token)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, ident.UserID, taskID)
}

// ToggleChecked flips the checked flag of an owned task.
func (s *TaskServiceImpl) ToggleChecked(ctx context.Context, token string, taskID int64) (bool, error) {
	ident, err := s.auth.Resolve(ctx, token)
	if err != nil {
		return false, err
	}
	return s.tasks.ToggleChecked(ctx, ident.UserID, taskID)
}

// TogglePrivate flips the private flag of an owned task.
func (s *TaskServiceImpl) TogglePrivate(ctx context.Context, token string, taskID int64) (bool, error) {
	ident, err := s.auth.Resolve(ctx, token)
	if err != nil {
		return false, err
	}
	return s.tasks.TogglePrivate(ctx, ident.UserID, taskID)
}

// List evaluates the three read branches in precedence order.
func (s *TaskServiceImpl) List(ctx context.Context, id *int64, token string) ([]model.Task, error) {
	if id != nil {
		// Direct id lookup bypasses the visibility filter.
		return s.tasks.GetByID(ctx, *id)
	}
	if token != "" {
		// A stale token degrades to anonymous visibility: the nil owner id
		// matches no rows, leaving only the public half of the OR.
		owner := uuid.Nil
		if ident, err := s.auth.Resolve(ctx, token); err == nil {
			owner = ident.UserID
		}
		return s.tasks.ListVisible(ctx, owner)
	}
	return s.tasks.ListPublic(ctx)
}
