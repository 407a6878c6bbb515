// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TableName is the single table holding uploaded campus figures
const TableName = "campus_data"

// EnsureSchema creates campus_data and its lookup index if missing.
// Safe to call multiple times - uses IF NOT EXISTS. The returned bool
// reports whether the table was already present before the call.
func EnsureSchema(ctx context.Context, conn *sqlx.DB) (bool, error) {
	existed, err := TableExists(ctx, conn)
	if err != nil {
		return false, err
	}

	schema := sqliteSchema
	if conn.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return existed, fmt.Errorf("failed to create schema: %w", err)
	}

	return existed, nil
}

// TableExists reports whether campus_data is present in the connected database
func TableExists(ctx context.Context, conn *sqlx.DB) (bool, error) {
	var exists bool
	var err error

	switch conn.DriverName() {
	case DriverPostgres:
		err = conn.GetContext(ctx, &exists, `SELECT to_regclass($1) IS NOT NULL`, TableName)
	default:
		var n int
		err = conn.GetContext(ctx, &n,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, TableName)
		exists = n > 0
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table existence: %w", err)
	}

	return exists, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS campus_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    academic_year TEXT NOT NULL,
    campus_name TEXT NOT NULL,
    strength INTEGER,
    onroll INTEGER,
    present INTEGER,
    absent INTEGER,
    nso INTEGER,
    paid INTEGER,
    unpaid INTEGER,
    admission INTEGER,
    tc INTEGER,
    cheques INTEGER,
    using_bus INTEGER,
    using_rickshaw INTEGER,
    using_cycle_moped_stand INTEGER,
    conc_50 INTEGER,
    conc_40 INTEGER,
    conc_30 INTEGER,
    conc_20 INTEGER,
    conc_10 INTEGER,
    tw INTEGER,
    mw INTEGER,
    sec INTEGER,
    avg_std_sec INTEGER
);

CREATE INDEX IF NOT EXISTS idx_campus_data_date_year ON campus_data(date, academic_year);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS campus_data (
    id BIGSERIAL PRIMARY KEY,
    date TEXT NOT NULL,
    academic_year TEXT NOT NULL,
    campus_name TEXT NOT NULL,
    strength BIGINT,
    onroll BIGINT,
    present BIGINT,
    absent BIGINT,
    nso BIGINT,
    paid BIGINT,
    unpaid BIGINT,
    admission BIGINT,
    tc BIGINT,
    cheques BIGINT,
    using_bus BIGINT,
    using_rickshaw BIGINT,
    using_cycle_moped_stand BIGINT,
    conc_50 BIGINT,
    conc_40 BIGINT,
    conc_30 BIGINT,
    conc_20 BIGINT,
    conc_10 BIGINT,
    tw BIGINT,
    mw BIGINT,
    sec BIGINT,
    avg_std_sec BIGINT
);

CREATE INDEX IF NOT EXISTS idx_campus_data_date_year ON campus_data(date, academic_year);
`
