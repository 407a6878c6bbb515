// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqlitePragmas are applied to every pooled sqlite connection
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

func init() {
	// sqlx only knows the cgo driver name; modernc registers "sqlite"
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the configured database. dbType is "sqlite" or "postgres";
// for sqlite the url is a file path (or ":memory:").
func Open(dbType, url string) (*sqlx.DB, error) {
	switch dbType {
	case "", DriverSQLite:
		conn, err := sqlx.Open(DriverSQLite, sqliteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// Single writer: serialize access through one connection. This also
		// keeps a ":memory:" database alive for the life of the pool.
		conn.SetMaxOpenConns(1)
		return conn, nil
	case DriverPostgres:
		conn, err := sqlx.Open(DriverPostgres, url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}
