package repository

import (
	"context"

	"github.com/taskdeck/client/domain"
)

// TaskFilter narrows a task listing. Empty fields are omitted from the
// request; the predicates are ANDed server-side.
type TaskFilter struct {
	Status     string
	AssignedTo string
	CreatedBy  string
	Search     string
}

// IsZero reports whether no predicate is set.
func (f TaskFilter) IsZero() bool {
	return f == TaskFilter{}
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
