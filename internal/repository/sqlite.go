package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zakhtar/go-mobility-map/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// A :memory: database exists per connection; a single shared connection
	// keeps every statement on the same table. SQLite has one writer anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS routes (
			position INTEGER PRIMARY KEY,
			source_category TEXT NOT NULL,
			destination_category TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			origin_lat REAL NOT NULL,
			origin_lon REAL NOT NULL,
			dest_lat REAL NOT NULL,
			dest_lon REAL NOT NULL,
			baseline_count REAL NOT NULL,
			crisis_count REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_routes_timestamp ON routes(timestamp);
		CREATE INDEX IF NOT EXISTS idx_routes_categories ON routes(source_category, destination_category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// InsertBatch writes records at consecutive positions starting at start.
// Positions come from the loader, so table order survives whatever order
// batches land in. Timestamps are stored as unix seconds to keep the
// instant-equality filter exact.
func (s *SQLiteDB) InsertBatch(ctx context.Context, start int, records []models.MobilityRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning insert transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routes
			(position, source_category, destination_category, timestamp,
			 origin_lat, origin_lon, dest_lat, dest_lon, baseline_count, crisis_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx, start+i,
			r.SourceCategory, r.DestinationCategory, r.Timestamp.Unix(),
			r.OriginLat, r.OriginLon, r.DestLat, r.DestLon,
			r.BaselineCount, r.CrisisCount)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error inserting route at position %d: %w", start+i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing insert: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListRoutes(ctx context.Context, f Filter) ([]models.MobilityRecord, error) {
	query := `
		SELECT source_category, destination_category, timestamp,
		       origin_lat, origin_lon, dest_lat, dest_lon,
		       baseline_count, crisis_count
		FROM routes`

	var conds []string
	var args []any
	if f.At != nil {
		conds = append(conds, "timestamp = ?")
		args = append(args, f.At.Unix())
	}
	if f.SourceCategory != nil {
		conds = append(conds, "source_category = ?")
		args = append(args, *f.SourceCategory)
	}
	if f.DestinationCategory != nil {
		conds = append(conds, "destination_category = ?")
		args = append(args, *f.DestinationCategory)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY position"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying routes: %w", err)
	}
	defer rows.Close()

	routes := make([]models.MobilityRecord, 0)
	for rows.Next() {
		var r models.MobilityRecord
		var ts int64
		err := rows.Scan(&r.SourceCategory, &r.DestinationCategory, &ts,
			&r.OriginLat, &r.OriginLon, &r.DestLat, &r.DestLon,
			&r.BaselineCount, &r.CrisisCount)
		if err != nil {
			return nil, fmt.Errorf("error scanning route: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}

	return routes, nil
}

func (s *SQLiteDB) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM routes").Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting routes: %w", err)
	}
	return n, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
