package cli

import "strings"

// Confirmer asks the user to approve a destructive action. Remove is
// only invoked after a positive answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// loopConfirmer reads the answer from the app's own input stream.
type loopConfirmer struct {
	app *App
}

func (c *loopConfirmer) Confirm(prompt string) bool {
	c.app.printf("%s [y/N] ", prompt)
	line, ok := <-c.app.lines
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
