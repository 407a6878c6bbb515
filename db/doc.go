// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection, schema, and campus_data access.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open("sqlite", "/srv/campus_data.db")

sqlite (modernc.org/sqlite, no cgo) is the default. Connections get a busy
timeout and the pool is limited to one connection, so writes from
concurrent requests queue instead of failing with SQLITE_BUSY. postgres
(lib/pq) is available for hosted deployments.

Queries are written with ? placeholders and rebound per driver by sqlx.

# Schema Creation

EnsureSchema creates the table and index:

	existed, err := db.EnsureSchema(ctx, conn)

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - campus_data: one row per campus per (date, academic_year), with a
    synthetic auto-increment id. Metrics are nullable integers.

# Indexes

  - campus_data.(date, academic_year)

# Record Replacement

ReplaceRecords runs delete-then-insert for one (date, academic_year) key in
a single transaction. There is no per-campus upsert: an upload always
replaces the whole day.
*/
package db
