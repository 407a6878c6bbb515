// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Campus Report server.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UploadHandler: spreadsheet ingestion
  - ShowHandler: data lookup and the viewer page
  - PageHandler: HTML pages (embedded templates)

Handlers are created via constructor functions:

	uploadHandler := handlers.NewUploadHandler(db, cfg)

# Upload

	POST /upload (multipart: password, date, academic_year, file)

Checks run in order and stop at the first failure:

 1. password matches the configured secret (401)
 2. date is present and YYYY-MM-DD (400)
 3. a file part is present (400)
 4. the filename ends in .xlsx (400)
 5. every required header is present (400)
 6. every data cell fits its column (400)

A workbook that cannot be opened at all is a 500. On success the day's rows
for (date, academic_year) are replaced in one transaction; an empty sheet
clears the day.

# Show

	GET /show?date=YYYY-MM-DD&academic_year=2025-26

Returns the stored rows as a JSON array without id or date, 404 when the
day has no rows, 500 "Error querying data: ..." for a malformed date. Without a date the viewer page
is rendered instead.

academic_year falls back to the configured default on both endpoints.
*/
package handlers
