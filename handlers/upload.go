// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/campus-report/auth"
	"github.com/danielhkuo/campus-report/cliparse"
	"github.com/danielhkuo/campus-report/db"
	"github.com/danielhkuo/campus-report/middleware"
	"github.com/danielhkuo/campus-report/models"
	"github.com/danielhkuo/campus-report/sheet"
)

type UploadHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewUploadHandler(db *sqlx.DB, cfg cliparse.Config) *UploadHandler {
	return &UploadHandler{db: db, cfg: cfg}
}

// Upload handles POST /upload
// Replaces every stored row for (date, academic_year) with the spreadsheet's rows
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := middleware.ParseUploadForm(w, r, h.cfg.MaxUploadBytes); err != nil {
		if errors.Is(err, middleware.ErrBodyTooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge,
				"Upload exceeds "+humanize.IBytes(uint64(h.cfg.MaxUploadBytes))+".")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	if err := auth.CheckUploadPassword(r.FormValue(models.FieldPassword), h.cfg.UploadPassword); err != nil {
		slog.Warn("upload rejected", "reason", "bad password", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect password.")
		return
	}

	date, ok := parseDate(w, r.FormValue(models.FieldDate))
	if !ok {
		return
	}
	academicYear := h.academicYear(r.FormValue(models.FieldAcademicYear))

	file, header, err := r.FormFile(models.FieldFile)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	if !sheet.HasExtension(header.Filename) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "File must be .xlsx.")
		return
	}

	res, err := sheet.Read(file, sheet.LimitsFor(h.cfg.MaxUploadBytes))
	if err != nil {
		var missing *sheet.MissingColumnsError
		var cell *sheet.CellError
		switch {
		case errors.As(err, &missing):
			middleware.ErrorResponse(w, http.StatusBadRequest,
				"Missing required columns in XLSX: "+strings.Join(missing.Missing, ", "))
		case errors.As(err, &cell):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid data in XLSX: "+cell.Error())
		default:
			slog.Error("failed to read workbook", "filename", header.Filename, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
		}
		return
	}

	replaced, err := db.ReplaceRecords(r.Context(), h.db, date, academicYear, res.Records)
	if err != nil {
		slog.Error("failed to replace records", "date", date, "academic_year", academicYear, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error processing file: failed to save data")
		return
	}

	slog.Info("campus data uploaded",
		"date", date,
		"academic_year", academicYear,
		"filename", header.Filename,
		"size", humanize.Bytes(uint64(header.Size)),
		"rows", len(res.Records),
		"rounded", res.Rounded,
		"replaced", replaced,
	)

	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Message: "Data uploaded successfully!",
		Rows:    len(res.Records),
		Rounded: res.Rounded,
	})
}

func (h *UploadHandler) academicYear(value string) string {
	return effectiveAcademicYear(value, h.cfg.DefaultAcademicYear)
}

// parseDate normalizes an upload's YYYY-MM-DD value, writing a 400 response
// when it is missing or malformed
func parseDate(w http.ResponseWriter, value string) (string, bool) {
	if value == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Date is required.")
		return "", false
	}
	date, err := normalizeDate(value)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		return "", false
	}
	return date, true
}

func normalizeDate(value string) (string, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return "", err
	}
	return t.Format(models.DateLayout), nil
}

func effectiveAcademicYear(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
