// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/campus-report/cliparse"
	"github.com/danielhkuo/campus-report/db"
	"github.com/danielhkuo/campus-report/middleware"
	"github.com/danielhkuo/campus-report/models"
)

type ShowHandler struct {
	db    *sqlx.DB
	cfg   cliparse.Config
	pages *PageHandler
}

func NewShowHandler(db *sqlx.DB, cfg cliparse.Config, pages *PageHandler) *ShowHandler {
	return &ShowHandler{db: db, cfg: cfg, pages: pages}
}

// Show handles GET /show
// Without a date it renders the viewer page; with one it returns the stored rows as JSON
func (h *ShowHandler) Show(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	academicYear := effectiveAcademicYear(query.Get(models.FieldAcademicYear), h.cfg.DefaultAcademicYear)

	if query.Get(models.FieldDate) == "" {
		h.pages.RenderShow(w, academicYear)
		return
	}

	// Unparseable dates are reported as query errors
	date, err := normalizeDate(query.Get(models.FieldDate))
	if err != nil {
		slog.Warn("unusable show date", "date", query.Get(models.FieldDate), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error querying data: "+err.Error())
		return
	}

	records, err := db.FindRecords(r.Context(), h.db, date, academicYear)
	if errors.Is(err, db.ErrNoRecords) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Data not available for selected date and academic year.")
		return
	}
	if err != nil {
		slog.Error("failed to query campus data", "date", date, "academic_year", academicYear, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error querying data.")
		return
	}

	slog.Debug("campus data found", "date", date, "academic_year", academicYear, "rows", len(records))

	middleware.JSONResponse(w, http.StatusOK, records)
}
