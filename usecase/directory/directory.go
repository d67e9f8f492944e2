package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/repository"
)

// Service exposes the read-only user directory backing creator and
// assignee selection.
type Service struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:  users,
		logger: logger,
	}
}

func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Current(ctx context.Context) (*domain.User, error) {
	return s.users.Current(ctx)
}

// Resolve returns the directory entry with the given id, or nil when
// the reference is dangling.
func (s *Service) Resolve(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, nil
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}
