// Package worker provides a small fixed-size worker pool with context
// cancellation and graceful drain. The pool is generic over its job type,
// so callers keep compile-time checking instead of asserting from an
// interface.
package worker

import (
	"context"
	"sync"
)

// ProcessFunc handles one job. Errors are the processor's to record; the
// pool keeps draining regardless.
type ProcessFunc[J any] func(ctx context.Context, job J) error

type Pool[J any] struct {
	numWorkers int
	jobs       chan J
	processor  ProcessFunc[J]
	wg         sync.WaitGroup
}

func NewPool[J any](numWorkers, bufferSize int, processor ProcessFunc[J]) *Pool[J] {
	return &Pool[J]{
		numWorkers: numWorkers,
		jobs:       make(chan J, bufferSize),
		processor:  processor,
	}
}

// Start launches the workers. They exit when the context is cancelled or
// when Stop closes the queue.
func (p *Pool[J]) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

func (p *Pool[J]) run(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.processor(ctx, job)
		}
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool[J]) Submit(job J) {
	p.jobs <- job
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool[J]) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
