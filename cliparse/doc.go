// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from flags and environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

# Precedence

CLI flags take precedence over environment variables:

 1. CLI flag (e.g., -p 8080)
 2. Environment variable (e.g., PORT=8080)
 3. Default value (if applicable)

main loads a .env file into the environment before parsing, so values in
.env behave like exported variables.

# Configuration Fields

	Port                int    // -p, PORT (default: 10000)
	DatabaseURL         string // -d, DATABASE_URL (default: campus_data.db next to the binary)
	DatabaseType        string // -t, DATABASE_TYPE (default: sqlite)
	UploadPassword      string // -upload-password, UPLOAD_PASSWORD (required)
	DefaultAcademicYear string // -academic-year, DEFAULT_ACADEMIC_YEAR (default: 2025-26)
	MaxUploadBytes      int64  // -max-upload, MAX_UPLOAD_BYTES (default: 32 MiB)

# Validation

The resolved Config is checked with validator struct tags: the port must be
in range, the database type must be sqlite or postgres, and the upload
password must be set.

# Security

The upload password should be passed via environment variable in
production, not CLI flags (visible in process lists).
*/
package cliparse
