package repository

import (
	"context"
	"time"

	"github.com/zakhtar/go-mobility-map/internal/models"
)

// Filter narrows a route listing. Nil fields are unconstrained; set fields
// are exact-equality predicates combined with AND. No ranges, no fuzzy
// matching. The dashboard always sets all three.
type Filter struct {
	At                  *time.Time
	SourceCategory      *string
	DestinationCategory *string
	Limit               int // 0 means unlimited
}

// RouteRepository is the query surface over the mobility table. The table
// is written exactly once, at startup, through InsertBatch; after ingest it
// is treated as immutable.
type RouteRepository interface {
	InsertBatch(ctx context.Context, start int, records []models.MobilityRecord) error
	ListRoutes(ctx context.Context, f Filter) ([]models.MobilityRecord, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}
