package rest

import (
	"context"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/repository"
)

type userRepository struct {
	client *apiclient.Client
}

// NewUserRepository returns a REST-backed implementation of
// UserRepository bound to the /users endpoints.
func NewUserRepository(client *apiclient.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.client.Get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Current(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := r.client.Get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
