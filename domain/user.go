package domain

import "strings"

// User represents an identity known to the API. Task creator and
// assignee fields reference users by id.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// DisplayName returns the best human-readable label for the user:
// name when present, otherwise the local part of the email, otherwise
// the id.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return EmailLocalPart(u.Email)
	}
	return u.ID
}

// EmailLocalPart returns everything before the "@" of an email
// address, or the input unchanged when it has no "@".
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
