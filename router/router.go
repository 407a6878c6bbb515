// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/campus-report/cliparse"
	"github.com/danielhkuo/campus-report/handlers"
	"github.com/danielhkuo/campus-report/middleware"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)
	showHandler := handlers.NewShowHandler(db, cfg, pageHandler)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Upload (admin, password protected)
	mux.HandleFunc("GET /upload", middleware.WithLogging(pageHandler.UploadPage))
	mux.HandleFunc("POST /upload", middleware.WithLogging(uploadHandler.Upload))

	// Viewer page and data lookup
	mux.HandleFunc("GET /show", middleware.WithLogging(showHandler.Show))

	// Root redirects to the viewer
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/show", http.StatusFound)
	})

	return mux
}
