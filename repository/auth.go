package repository

import (
	"context"

	"github.com/taskdeck/client/domain"
)

// RegisterProfile is the input for account registration.
type RegisterProfile struct {
	Name     string
	Email    string
	Password string
}

// AuthResult carries the server's answer to a credential exchange. The
// user may be absent even on success; normalization happens in the
// session layer.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthRepository exposes the unauthenticated credential-exchange
// endpoints.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, profile RegisterProfile) (*AuthResult, error)
}
