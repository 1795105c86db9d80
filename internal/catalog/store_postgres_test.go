package catalog

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgresStore connects to a PostgreSQL database for testing.
// It skips the test if the connection cannot be established.
func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	pgUser := os.Getenv("PGUSER")
	pgPassword := os.Getenv("PGPASSWORD")
	pgHost := os.Getenv("PGHOST")
	pgPort := os.Getenv("PGPORT")
	pgDB := os.Getenv("PGDATABASE")

	if pgUser == "" {
		pgUser = "user"
	}
	if pgPassword == "" {
		pgPassword = "password"
	}
	if pgHost == "" {
		pgHost = "localhost"
	}
	if pgPort == "" {
		pgPort = "5432"
	}
	if pgDB == "" {
		pgDB = "testdb"
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgHost, pgPort, pgUser, pgPassword, pgDB)

	st, err := NewPostgresStore(context.Background(), connStr, discardLogger())
	if err != nil {
		t.Skipf("skipping postgres tests: could not connect to postgres: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	_, err = st.db.Exec(`DROP TABLE IF EXISTS celestial_objects`)
	require.NoError(t, err)

	return st
}

func TestPostgresStoreSeedAndLoad(t *testing.T) {
	ctx := context.Background()
	st := setupPostgresStore(t)

	seeded, err := Seed(ctx, st, discardLogger())
	require.NoError(t, err)
	assert.True(t, seeded)

	got, err := st.ListLandmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultLandmarks, got)

	c, err := Load(ctx, st)
	require.NoError(t, err)
	l, ok := c.NearestTo(8.5)
	require.True(t, ok)
	assert.Equal(t, "Sirius", l.Name)

	seeded, err = Seed(ctx, st, discardLogger())
	require.NoError(t, err)
	assert.False(t, seeded)
}
