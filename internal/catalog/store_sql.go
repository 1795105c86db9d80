// internal/catalog/store_sql.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// dialect holds the statements that differ between SQL engines.
type dialect struct {
	name   string
	schema string
	insert string
}

const (
	countQuery = `SELECT COUNT(*) FROM celestial_objects`
	listQuery  = `
		SELECT id, name, distance_ly, object_type, description
		FROM celestial_objects
		ORDER BY id ASC
	`
)

// sqlStore is the database/sql implementation shared by the Postgres and SQLite stores.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
	tracer  trace.Tracer
	logger  *slog.Logger
}

func newSQLStore(db *sql.DB, d dialect, logger *slog.Logger) *sqlStore {
	return &sqlStore{
		db:      db,
		dialect: d,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// EnsureSchema creates the celestial_objects table if it does not exist.
func (s *sqlStore) EnsureSchema(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "catalog.ensure_schema",
		trace.WithAttributes(attribute.String("db.system", s.dialect.name)),
	)
	defer span.End()

	if _, err := s.db.ExecContext(ctx, s.dialect.schema); err != nil {
		return fmt.Errorf("create celestial_objects: %w", err)
	}
	return nil
}

// Count returns the number of stored landmarks.
func (s *sqlStore) Count(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.count",
		trace.WithAttributes(attribute.String("db.system", s.dialect.name)),
	)
	defer span.End()

	var n int
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count celestial_objects: %w", err)
	}
	return n, nil
}

// Insert writes landmarks atomically.
func (s *sqlStore) Insert(ctx context.Context, landmarks []Landmark) error {
	ctx, span := s.tracer.Start(ctx, "catalog.insert",
		trace.WithAttributes(
			attribute.String("db.system", s.dialect.name),
			attribute.Int("landmark.count", len(landmarks)),
		),
	)
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.dialect.insert)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, l := range landmarks {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, l.ID, l.Name, l.DistanceLY, l.ObjectType, l.Description); err != nil {
			return fmt.Errorf("insert landmark %d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListLandmarks returns every stored landmark ordered by ID.
func (s *sqlStore) ListLandmarks(ctx context.Context) ([]Landmark, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.list",
		trace.WithAttributes(attribute.String("db.system", s.dialect.name)),
	)
	defer span.End()

	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("query celestial_objects: %w", err)
	}
	defer rows.Close()

	var landmarks []Landmark
	for rows.Next() {
		var l Landmark
		if err := rows.Scan(&l.ID, &l.Name, &l.DistanceLY, &l.ObjectType, &l.Description); err != nil {
			return nil, fmt.Errorf("scan landmark: %w", err)
		}
		landmarks = append(landmarks, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate landmarks: %w", err)
	}

	span.SetAttributes(attribute.Int("landmarks.listed", len(landmarks)))
	s.logger.Debug("landmarks listed", "driver", s.dialect.name, "count", len(landmarks))
	return landmarks, nil
}

// Close releases the underlying database handle.
func (s *sqlStore) Close() error {
	return s.db.Close()
}
