// Package ingestion moves the parsed mobility table into the route
// repository at startup. It is one-shot: once Run returns, the table is
// complete and no ingest goroutines remain.
package ingestion

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/models"
	"github.com/zakhtar/go-mobility-map/internal/repository"
	"github.com/zakhtar/go-mobility-map/internal/worker"
)

// batchSize is how many records one insert job carries.
const batchSize = 500

type Loader struct {
	cfg  *config.Config
	repo repository.RouteRepository

	mu      sync.Mutex
	loadErr error
}

func NewLoader(cfg *config.Config, repo repository.RouteRepository) *Loader {
	return &Loader{
		cfg:  cfg,
		repo: repo,
	}
}

// batch carries a slice of records plus the table position of its first
// record, so result order does not depend on worker scheduling.
type batch struct {
	start   int
	records []models.MobilityRecord
}

// Run splits records into position-tagged batches and inserts them through
// the worker pool. Any insert failure fails the whole run; the caller
// treats that as fatal.
func (l *Loader) Run(ctx context.Context, records []models.MobilityRecord) error {
	pool := worker.NewPool(l.cfg.Worker.Count, l.cfg.Worker.BufferSize, l.process)
	pool.Start(ctx)

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		pool.Submit(batch{start: start, records: records[start:end]})
	}
	pool.Stop()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loadErr != nil {
		return l.loadErr
	}

	slog.Info("mobility table ingested", "routes", len(records))
	return nil
}

func (l *Loader) process(ctx context.Context, b batch) error {
	if err := l.repo.InsertBatch(ctx, b.start, b.records); err != nil {
		slog.Error("route batch insert failed", "start", b.start, "count", len(b.records), "error", err)
		l.mu.Lock()
		if l.loadErr == nil {
			l.loadErr = err
		}
		l.mu.Unlock()
		return err
	}

	return nil
}
