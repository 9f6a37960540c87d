// Package workers runs the long-lived parts of the process as one unit.
//
// Every [Worker] runs on its own goroutine. The first one to return ends
// the group: the shared context is cancelled and the others are waited for.
package workers

import "context"

// Worker is a long-running part of the process. Run blocks until the work
// is finished or ctx is done.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
