package httpcontext

import (
	"context"
	"time"

	"github.com/google/uuid"

	appLogger "github.com/taskdeck/client/pkg/logger"
)

// Adapter creates stdlib contexts for outbound API operations, carrying
// a deadline and a fresh request ID for log correlation.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs a new Adapter using the provided per-operation timeout.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Adapter{
		timeout: timeout,
	}
}

// Operation derives a context for one user-initiated operation from the
// given parent, enriched with a request ID.
func (a *Adapter) Operation(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithTimeout(parent, a.timeout)
	ctx = appLogger.ContextWithRequestID(ctx, uuid.NewString())
	return ctx, cancel
}
