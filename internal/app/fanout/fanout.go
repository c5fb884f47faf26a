// Package fanout runs independent application-layer fetches concurrently.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Task is one unit of work. It should honour ctx cancellation.
type Task func(ctx context.Context) error

// All runs tasks with at most maxWorkers in flight and waits for every one
// to return. The first failure cancels the context handed to the remaining
// tasks; all failures are joined into the returned error.
//
// A maxWorkers below one runs every task at once.
func All(ctx context.Context, maxWorkers int, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if maxWorkers < 1 || maxWorkers > len(tasks) {
		maxWorkers = len(tasks)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		sem  = make(chan struct{}, maxWorkers)
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
		cancel()
	}

	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				if err := parent.Err(); err != nil {
					fail(err)
				}
				return
			}

			if err := task(ctx); err != nil {
				fail(err)
			}
		}()
	}

	wg.Wait()

	return errors.Join(errs...)
}
