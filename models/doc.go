// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - AttendanceRecord: one row of campus_data, one campus per date per
    academic year. The id and date fields carry `json:"-"` so the show
    endpoint never exposes them.

Metrics are *int64 so an empty spreadsheet cell round-trips as SQL NULL and
JSON null.

# Response Types

  - UploadResponse: message, rows, rounded (omitted when zero)
  - ErrorResponse: error, message

# Constants

Upload form fields:

	FieldPassword     = "password"
	FieldDate         = "date"
	FieldAcademicYear = "academic_year"
	FieldFile         = "file"

Date layout:

	DateLayout = "2006-01-02"
*/
package models
