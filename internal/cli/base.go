package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/internal/validation"
)

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// renderErr turns an error into user-facing output. Validation errors
// are shown per field; everything else uses the domain message, with
// the server-provided text taking precedence over generic fallbacks.
func (a *App) renderErr(err error) {
	if err == nil {
		return
	}

	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			a.printf("  %s %s\n", name, fields[name])
		}
		return
	}

	a.printf("error: %s\n", domain.ErrorMessage(err, "something went wrong"))
}
