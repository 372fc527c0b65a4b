package konieczny

import (
	"context"
	"time"
)

// Run drives the engine to completion, checking ctx for cancellation
// between every step so a caller can interrupt a long decomposition
// without losing the classes already discovered.
func (e *Engine) Run(ctx context.Context) error {
	if e.state == Paused {
		e.state = Running
	}
	for {
		select {
		case <-ctx.Done():
			e.state = Cancelled
			return ErrCancelled
		default:
		}

		done, err := e.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// RunFor drives the engine for at most d before giving up; it returns
// ErrCancelled if d elapses before the decomposition finishes.
func (e *Engine) RunFor(d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return e.Run(ctx)
}

// RunUntil drives the engine one step at a time until it finishes or
// pred(e) reports true, in which case the engine is left Paused and a
// later call to Run/RunUntil resumes it exactly where it left off. If
// the decomposition finishes without pred ever becoming true, RunUntil
// returns ErrCancelled; the engine is nonetheless Finished and fully
// queryable, since reaching the end of the candidate queue is not a
// fatal condition for the engine's own state.
func (e *Engine) RunUntil(pred func(*Engine) bool) error {
	if e.state == Paused {
		e.state = Running
	}
	for {
		if pred(e) {
			if e.state == Running {
				e.state = Paused
			}
			return nil
		}

		done, err := e.step()
		if err != nil {
			return err
		}
		if done {
			return ErrCancelled
		}
	}
}
