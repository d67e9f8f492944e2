package repository

import (
	"context"

	"github.com/taskdeck/client/domain"
)

// UserRepository exposes the read-only user directory used for creator
// and assignee selection.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
}
