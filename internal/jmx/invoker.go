package jmx

import (
	"context"

	"checkjmx/pkg/logging"
)

// InvokeOperation invokes the named operation on a resource with no
// arguments, as a fire-and-forget side effect; only success vs. failure is
// reported. Any failure is normalized into *InvokeError carrying the
// operation name and the underlying cause.
func InvokeOperation(ctx context.Context, s *Session, name ObjectName, operation string) error {
	logging.Debug("Probe", "invoking operation %s on %s", operation, name)
	if err := s.Invoke(ctx, name, operation); err != nil {
		return &InvokeError{Operation: operation, Reason: err}
	}
	return nil
}
