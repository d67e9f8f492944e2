package domain

import "time"

// TaskStatus classifies where a task sits in its lifecycle.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether the status is one of the enumerated values.
// Unknown strings are never accepted silently.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task represents a managed activity item as served by the API. The
// server owns the authoritative copy; the client only ever holds the
// result of the most recent listing.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedBy   *User      `json:"createdBy,omitempty"`
	AssignedTo  *User      `json:"assignedTo,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == StatusDone
}

// CreatorID returns the id of the creating user, or "" when the
// reference is unresolved.
func (t *Task) CreatorID() string {
	if t == nil || t.CreatedBy == nil {
		return ""
	}
	return t.CreatedBy.ID
}

// AssigneeID returns the id of the assigned user, or "" when the task
// is unassigned.
func (t *Task) AssigneeID() string {
	if t == nil || t.AssignedTo == nil {
		return ""
	}
	return t.AssignedTo.ID
}
