// Package observe defines the two narrow contracts through which traversal
// algorithms talk to the outside world: a progress notifier the renderer uses
// to draw a frame, and a cancellation poller fed by the input system.
//
// Algorithms call the notifier at fixed checkpoints and block until it
// returns, so frames are presented in lockstep with the search. Once per main
// loop iteration they call Checkpoint, which folds a context and a Canceller
// into a single error.
package observe

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled is returned (wrapped) when a run is interrupted by its
// Canceller or its context.
var ErrCancelled = errors.New("observe: run cancelled")

// Notifier receives one call per progress checkpoint. Implementations must
// be synchronous: the caller does not proceed until NotifyProgress returns.
type Notifier interface {
	NotifyProgress()
}

// NotifyFunc adapts a plain function to Notifier. A nil NotifyFunc is a no-op.
type NotifyFunc func()

// NotifyProgress calls f.
func (f NotifyFunc) NotifyProgress() {
	if f != nil {
		f()
	}
}

// Canceller is polled once per algorithm iteration.
type Canceller interface {
	PollCancelled() bool
}

// CancelFunc adapts a plain function to Canceller. A nil CancelFunc never cancels.
type CancelFunc func() bool

// PollCancelled calls f.
func (f CancelFunc) PollCancelled() bool {
	return f != nil && f()
}

// Nop is a Notifier that does nothing.
var Nop Notifier = NotifyFunc(nil)

// Never is a Canceller that never cancels.
var Never Canceller = CancelFunc(nil)

// Checkpoint reports whether the current run must stop. It returns nil to
// continue, or an error wrapping ErrCancelled (and ctx.Err() when the context
// is done). A nil ctx or c is treated as "never cancelled".
func Checkpoint(ctx context.Context, c Canceller) error {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		default:
		}
	}
	if c != nil && c.PollCancelled() {
		return fmt.Errorf("%w: cancellation requested", ErrCancelled)
	}
	return nil
}

// Counter is a Notifier that counts its calls and optionally forwards them.
type Counter struct {
	N    int
	Next Notifier
}

// NotifyProgress increments N and forwards to Next.
func (c *Counter) NotifyProgress() {
	c.N++
	if c.Next != nil {
		c.Next.NotifyProgress()
	}
}

// AfterN returns a Canceller that reports cancellation from the (n+1)-th poll
// onwards. It lets drivers and tests bound a run.
func AfterN(n int) Canceller {
	polls := 0
	return CancelFunc(func() bool {
		polls++
		return polls > n
	})
}
