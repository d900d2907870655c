package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPool_ProcessesSubmittedJobs(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(2, 8, func(ctx context.Context, job int) error {
		processed.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	for i := 0; i < 6; i++ {
		pool.Submit(i)
	}
	pool.Stop()

	if processed.Load() != 6 {
		t.Errorf("expected 6 jobs processed, got %d", processed.Load())
	}
}

func TestPool_ConcurrentSubmit(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(4, 64, func(ctx context.Context, job int) error {
		processed.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pool.Submit(n)
		}(i)
	}
	wg.Wait()
	pool.Stop()

	if processed.Load() != 50 {
		t.Errorf("expected 50 jobs processed, got %d", processed.Load())
	}
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(2, 32, func(ctx context.Context, job int) error {
		time.Sleep(time.Millisecond)
		processed.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	for i := 0; i < 20; i++ {
		pool.Submit(i)
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool.Stop() timed out")
	}

	if processed.Load() != 20 {
		t.Errorf("expected all 20 queued jobs drained, got %d", processed.Load())
	}
}

func TestPool_ContextCancellationStopsWorkers(t *testing.T) {
	block := make(chan struct{})
	pool := NewPool(2, 4, func(ctx context.Context, job int) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-block:
			return nil
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	pool.Submit(1)
	pool.Submit(2)

	cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not exit after cancellation")
	}
	close(block)
}
