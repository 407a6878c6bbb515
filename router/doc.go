// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Campus Report server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Root:

	GET / - Redirects to /show

Upload (requires the shared password form field):

	GET  /upload - Upload form
	POST /upload - Replace a day's rows from an .xlsx file

Viewer:

	GET /show                 - Viewer page
	GET /show?date=YYYY-MM-DD - Stored rows as JSON (academic_year optional)

# Handler Initialization

The router creates handler instances with dependency injection:

	pageHandler := handlers.NewPageHandler(cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)
	showHandler := handlers.NewShowHandler(db, cfg, pageHandler)

All handlers receive the configuration; data handlers also receive the
database connection.
*/
package router
