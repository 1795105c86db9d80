// internal/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Source is the read contract the catalog is loaded from.
type Source interface {
	ListLandmarks(ctx context.Context) ([]Landmark, error)
}

// Store is a persistent landmark table that can prepare and seed itself.
type Store interface {
	Source
	EnsureSchema(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, landmarks []Landmark) error
	Close() error
}

// Nearest is the lookup the distance calculator depends on.
type Nearest interface {
	NearestTo(distanceLY float64) (Landmark, bool)
}

// OpenStore opens the landmark store for the named driver.
// Supported drivers are "sqlite", "postgres" and "memory".
func OpenStore(ctx context.Context, driver, dsn string, logger *slog.Logger) (Store, error) {
	switch driver {
	case "sqlite":
		st, err := NewSQLiteStore(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := NewPostgresStore(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", driver)
	}
}
