package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL backend. Its value is the database/sql driver name.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps a DB_TYPE value to a Dialect.
func ParseDialect(dbtype string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(dbtype)) {
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbtype)
	}
}

// Rebind rewrites ? placeholders to $1..$n for postgres. Queries must not
// contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NewDB opens a connection pool for dialect and verifies it with a ping
func NewDB(ctx context.Context, dialect Dialect, connstr string) (*sql.DB, error) {
	db, openError := sql.Open(string(dialect), connstr)
	if openError != nil {
		return nil, fmt.Errorf("error opening connection -> %w", openError)
	}

	if dialect == SQLite {
		// a single writer connection; also keeps ":memory:" databases shared
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		for _, pragma := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000"} {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				db.Close()
				return nil, fmt.Errorf("could not configure sqlite (%s) -> %w", pragma, err)
			}
		}
	}

	if pingError := db.PingContext(ctx); pingError != nil {
		db.Close()
		return nil, fmt.Errorf("could not establish connection with database -> %w", pingError)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string
func BuildDBConnStr(host, port, password, user, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, dbname, sslmode)
}
