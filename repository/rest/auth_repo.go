package rest

import (
	"context"

	"github.com/taskdeck/client/api/transport"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/repository"
)

type authRepository struct {
	client *apiclient.Client
}

// NewAuthRepository returns an implementation of AuthRepository backed
// by the /auth endpoints. The client must be unauthenticated: the auth
// endpoints never carry a bearer header and a 401 here means bad
// credentials, not an expired session.
func NewAuthRepository(client *apiclient.Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*repository.AuthResult, error) {
	var resp transport.AuthResponse
	err := r.client.Post(ctx, "/auth/login", transport.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &repository.AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (r *authRepository) Register(ctx context.Context, profile repository.RegisterProfile) (*repository.AuthResult, error) {
	var resp transport.AuthResponse
	err := r.client.Post(ctx, "/auth/register", transport.RegisterRequest{
		Name:     profile.Name,
		Email:    profile.Email,
		Password: profile.Password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &repository.AuthResult{Token: resp.Token, User: resp.User}, nil
}
