package migrations

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/color-swatch/api/datastore"
)

func TestRunMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := datastore.NewDB(ctx, datastore.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(ctx, db, datastore.SQLite, zerolog.Nop()))
	// second run is a no-op
	require.NoError(t, RunMigrations(ctx, db, datastore.SQLite, zerolog.Nop()))

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	require.Equal(t, 1, applied)

	_, err = db.Exec(`INSERT INTO colors (hex_code) VALUES ('#123456')`)
	require.NoError(t, err)
}

func TestReadMigrationFiles(t *testing.T) {
	for _, dialect := range []datastore.Dialect{datastore.Postgres, datastore.SQLite} {
		t.Run(string(dialect), func(t *testing.T) {
			migrations, err := readMigrationFiles(dialect, zerolog.Nop())
			require.NoError(t, err)
			require.NotEmpty(t, migrations)
			require.Equal(t, 1, migrations[0].Version)
			require.Equal(t, "create_colors", migrations[0].Name)
			require.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS colors")
		})
	}
}

func TestReadMigrationFiles_UnknownDialect(t *testing.T) {
	_, err := readMigrationFiles(datastore.Dialect("oracle"), zerolog.Nop())
	require.Error(t, err)
}

func TestPostgresColorIDIs64Bit(t *testing.T) {
	migrations, err := readMigrationFiles(datastore.Postgres, zerolog.Nop())
	require.NoError(t, err)
	// ids above int4 must reach the table and come back as not found
	require.Contains(t, migrations[0].SQL, "id BIGSERIAL PRIMARY KEY")
}
