package transport

import (
	"time"

	"github.com/taskdeck/client/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskPayload is the full task shape the API expects on create and
// update. The update endpoint takes the complete object, not a diff.
type TaskPayload struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedByID  string     `json:"createdById"`
	AssignedToID string     `json:"assignedToId,omitempty"`
}

// PayloadFromTask flattens a task's user references into the id-based
// payload the API expects.
func PayloadFromTask(t *domain.Task) TaskPayload {
	if t == nil {
		return TaskPayload{}
	}
	return TaskPayload{
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		DueDate:      t.DueDate,
		CreatedByID:  t.CreatorID(),
		AssignedToID: t.AssigneeID(),
	}
}
