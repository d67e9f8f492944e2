package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taskdeck/client/domain"
)

// Credentials is the sign-in form input.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Profile is the registration form input.
type Profile struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// TaskForm is the task editor input, checked before any network call.
type TaskForm struct {
	Title        string     `validate:"required"`
	Description  string     `validate:"required"`
	Status       string     `validate:"required,oneof=TODO IN_PROGRESS DONE"`
	CreatedByID  string     `validate:"required"`
	AssignedToID string     `validate:"omitempty"`
	DueDate      *time.Time `validate:"omitempty"`
}

// FieldErrors maps field names to human-readable messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates a form struct. On failure it returns a domain
// validation error wrapping FieldErrors, so callers can surface
// per-field messages and skip submission.
func Check(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.WrapError(domain.ErrCodeInternal, "validation could not run", err)
	}

	fields := FieldErrors{}
	for _, fe := range verrs {
		fields[fieldName(fe.Field())] = message(fe)
	}
	return domain.WrapError(domain.ErrCodeInvalid, "validation failed", fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// fieldName lowercases the leading rune so messages read like the form
// labels rather than Go identifiers.
func fieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
