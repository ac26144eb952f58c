package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/color-swatch/api/datastore"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFiles embed.FS

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// RunMigrations executes all pending migrations for dialect
func RunMigrations(ctx context.Context, db *sql.DB, dialect datastore.Dialect, log zerolog.Logger) error {
	log.Info().Str("dialect", string(dialect)).Msg("starting database migrations")

	if err := createMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	appliedMigrations, err := getAppliedMigrations(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %v", err)
	}

	migrations, err := readMigrationFiles(dialect, log)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %v", err)
	}

	for _, migration := range migrations {
		if _, applied := appliedMigrations[migration.Version]; applied {
			log.Debug().Msgf("migration %03d_%s already applied, skipping", migration.Version, migration.Name)
			continue
		}

		log.Info().Msgf("applying migration %03d_%s", migration.Version, migration.Name)
		if err := applyMigration(ctx, db, dialect, migration); err != nil {
			return fmt.Errorf("failed to apply migration %03d_%s: %v", migration.Version, migration.Name, err)
		}
	}

	log.Info().Msg("all migrations completed successfully")
	return nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`

	_, err := db.ExecContext(ctx, query)
	return err
}

// getAppliedMigrations returns the set of applied migration versions
func getAppliedMigrations(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	query := `SELECT version FROM schema_migrations ORDER BY version`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// readMigrationFiles reads the embedded migrations of dialect, sorted by version
func readMigrationFiles(dialect datastore.Dialect, log zerolog.Logger) ([]Migration, error) {
	dir := string(dialect)

	files, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for dialect %q: %v", dialect, err)
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		// e.g. "001_create_colors.sql"
		var version int
		var name string
		_, err := fmt.Sscanf(file.Name(), "%d_%s", &version, &name)
		if err != nil {
			log.Warn().Str("file", file.Name()).Msg("skipping migration file with invalid name")
			continue
		}
		name = strings.TrimSuffix(name, ".sql")

		content, err := migrationFiles.ReadFile(path.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %v", file.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// applyMigration executes a migration and records it in schema_migrations
func applyMigration(ctx context.Context, db *sql.DB, dialect datastore.Dialect, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
		return err
	}

	recordQuery := dialect.Rebind(`
		INSERT INTO schema_migrations (version, name)
		VALUES (?, ?)`)

	if _, err := tx.ExecContext(ctx, recordQuery, migration.Version, migration.Name); err != nil {
		return err
	}

	return tx.Commit()
}
