// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/campus-report/cliparse"
	"github.com/danielhkuo/campus-report/db"
	"github.com/danielhkuo/campus-report/sheet"
)

// TestPassword is the upload secret in GetTestConfig
const TestPassword = "test-upload-secret"

// SetupTestDB opens a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := db.EnsureSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                10000,
		DatabaseURL:         ":memory:",
		DatabaseType:        db.DriverSQLite,
		UploadPassword:      TestPassword,
		DefaultAcademicYear: cliparse.DefaultAcademicYear,
		MaxUploadBytes:      cliparse.DefaultMaxUploadBytes,
	}
}

// CampusRow returns a full data row: the campus name followed by the 22
// metrics base+1 .. base+22 in column order
func CampusRow(campus string, base int) []any {
	row := make([]any, len(sheet.Columns))
	row[0] = campus
	for i := 1; i < len(row); i++ {
		row[i] = base + i
	}
	return row
}

// BuildWorkbook writes headers and rows to the first sheet of a new .xlsx
// workbook and returns its bytes
func BuildWorkbook(t *testing.T, headers []string, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		t.Fatalf("Failed to write header row: %v", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			t.Fatalf("Failed to write row %d: %v", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

// NewUploadRequest builds a multipart POST /upload request. The file part
// is omitted when filename is empty.
func NewUploadRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("Failed to write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// UploadFields returns the form fields for an authorized upload
func UploadFields(date, academicYear string) map[string]string {
	fields := map[string]string{
		"password": TestPassword,
		"date":     date,
	}
	if academicYear != "" {
		fields["academic_year"] = academicYear
	}
	return fields
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
