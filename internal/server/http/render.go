package httpserver

import (
	"time"

	"github.com/avilov/tasklist/internal/model"
)

// taskPayload is the wire shape of a task. The field list is explicit so the
// API contract stays reviewable independent of the storage schema.
type taskPayload struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     string    `json:"owner"`
	Checked   bool      `json:"checked"`
	Private   bool      `json:"private"`
}

func renderTasks(tasks []model.Task) []taskPayload {
	out := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskPayload{
			ID:        t.ID,
			Text:      t.Text,
			CreatedAt: t.CreatedAt,
			Owner:     t.Owner,
			Checked:   t.Checked,
			Private:   t.Private,
		})
	}
	return out
}
