package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs its workers concurrently.
type Workers struct {
	workers []Worker
	limit   int
}

// New returns a group running ws with at most limit of them at once.
// A limit below one means no limit.
func New(limit int, ws ...Worker) *Workers {
	return &Workers{workers: ws, limit: limit}
}

// Add appends w to the group.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker and waits for all of them. The first error
// cancels the context handed to the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
