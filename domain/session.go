package domain

import "time"

// SentinelUserID marks an identity synthesized on the client because
// the auth endpoint returned a token without a user object. Whether
// the real server ever omits the user is unconfirmed; this shim keeps
// the session invariant intact until the contract is verified.
const SentinelUserID = "user"

// Session holds the credential and identity of the signed-in user.
// Both fields are set together or not at all: a session with a token
// but no identity never exists.
type Session struct {
	Token     string    `json:"token"`
	User      *User     `json:"user,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAuthenticated reports whether both credential and identity are
// present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// IsExpired reports whether the credential's known expiry has passed.
// Sessions without a known expiry never expire client-side.
func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
