// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-report/cliparse"
	"github.com/danielhkuo/campus-report/middleware"
	"github.com/danielhkuo/campus-report/sheet"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	AcademicYear string
	Columns      []sheet.Column
}

type PageHandler struct {
	cfg cliparse.Config
}

func NewPageHandler(cfg cliparse.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// UploadPage handles GET /upload
func (h *PageHandler) UploadPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "upload.html", pageData{
		AcademicYear: h.cfg.DefaultAcademicYear,
		Columns:      sheet.Columns,
	})
}

// RenderShow writes the viewer page for academicYear
func (h *PageHandler) RenderShow(w http.ResponseWriter, academicYear string) {
	h.render(w, "show.html", pageData{
		AcademicYear: academicYear,
		Columns:      sheet.Columns,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
