// Package workers runs a set of background jobs together and collects
// their errors.
package workers

import "context"

// Worker is one background job. Run should return when its work is done or
// ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

// Run implements [Worker].
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
