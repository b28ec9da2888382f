package workers

import (
	"context"
	"errors"
	"sync"
)

type Workers struct {
	workers []Worker
}

// NewWorkers constructs a Workers aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The joined error aggregates individual worker failures.
func (w *Workers) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, len(w.workers))

	for i, worker := range w.workers {
		wg.Add(1)
		go func(i int, worker Worker) {
			defer wg.Done()
			errs[i] = worker.Run(ctx)
		}(i, worker)
	}

	wg.Wait()
	return errors.Join(errs...)
}
