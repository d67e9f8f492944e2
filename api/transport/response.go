package transport

import (
	"github.com/taskdeck/client/domain"
)

// AuthResponse is the body returned by the auth endpoints. Some
// deployments return only the token; the user object is optional and
// normalization happens in the session layer.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}
