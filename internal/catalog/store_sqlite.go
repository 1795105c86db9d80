// internal/catalog/store_sqlite.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

var sqliteDialect = dialect{
	name: "sqlite",
	schema: `
		CREATE TABLE IF NOT EXISTS celestial_objects (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			distance_ly REAL NOT NULL,
			object_type TEXT NOT NULL,
			description TEXT NOT NULL
		)
	`,
	insert: `
		INSERT INTO celestial_objects (id, name, distance_ly, object_type, description)
		VALUES (?, ?, ?, ?, ?)
	`,
}

// SQLiteStore keeps landmarks in a local SQLite file.
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore opens (creating if needed) the SQLite database at path.
func NewSQLiteStore(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer keeps seeding free of SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	return &SQLiteStore{sqlStore: newSQLStore(db, sqliteDialect, logger)}, nil
}
