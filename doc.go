// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campus Report server.

Campus Report stores a daily spreadsheet of per-campus attendance,
transport and fee figures, keyed by date and academic year, and serves it
back to a viewer page.

# Starting the Server

The server requires the upload password via environment, .env file, or flag:

	UPLOAD_PASSWORD=... go run .

Or with flags:

	go run . -p 10000 -d ./campus_data.db -upload-password ...

# Configuration

Required settings:

  - UPLOAD_PASSWORD (-upload-password): Shared secret for uploads

Optional settings:

  - PORT (-p): Server port (default: 10000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres URL
    (default: campus_data.db next to the binary)
  - DEFAULT_ACADEMIC_YEAR (-academic-year): default 2025-26
  - MAX_UPLOAD_BYTES (-max-upload): default 32 MiB

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (upload, show, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and form helpers
  - models: Record and response types
  - sheet: .xlsx parsing and the header-to-column mapping
  - auth: Upload password check
  - db: Connection, schema, and record replacement
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
