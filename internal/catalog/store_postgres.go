// internal/catalog/store_postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

var postgresDialect = dialect{
	name: "postgresql",
	schema: `
		CREATE TABLE IF NOT EXISTS celestial_objects (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			distance_ly DOUBLE PRECISION NOT NULL,
			object_type TEXT NOT NULL,
			description TEXT NOT NULL
		)
	`,
	insert: `
		INSERT INTO celestial_objects (id, name, distance_ly, object_type, description)
		VALUES ($1, $2, $3, $4, $5)
	`,
}

// PostgresStore keeps landmarks in a PostgreSQL table.
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore opens a connection pool for dsn and verifies it with a ping.
func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(5)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{sqlStore: newSQLStore(db, postgresDialect, logger)}, nil
}
