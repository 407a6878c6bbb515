// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/campus-report/db"
	"github.com/danielhkuo/campus-report/models"
	"github.com/danielhkuo/campus-report/sheet"
	"github.com/danielhkuo/campus-report/testutil"
)

func TestUpload(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewUploadHandler(conn, cfg)

	validWorkbook := testutil.BuildWorkbook(t, sheet.Headers(),
		testutil.CampusRow("North", 500),
		testutil.CampusRow("South", 300),
	)

	var missingHeaders []string
	for _, h := range sheet.Headers() {
		if h != "Menial Ward" {
			missingHeaders = append(missingHeaders, h)
		}
	}

	badRow := testutil.CampusRow("South", 0)
	badRow[5] = "n/a"

	tests := []struct {
		name            string
		fields          map[string]string
		filename        string
		content         []byte
		expectedStatus  int
		expectedMessage string
		expectedRows    int
	}{
		{
			name:           "valid upload",
			fields:         testutil.UploadFields("2025-04-01", "2025-26"),
			filename:       "daily.xlsx",
			content:        validWorkbook,
			expectedStatus: http.StatusOK,
			expectedRows:   2,
		},
		{
			name:            "wrong password",
			fields:          map[string]string{"password": "nope", "date": "2025-04-01"},
			filename:        "daily.xlsx",
			content:         validWorkbook,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Incorrect password.",
		},
		{
			name:            "missing password checked before date",
			fields:          map[string]string{"date": "not-a-date"},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Incorrect password.",
		},
		{
			name:            "missing date",
			fields:          map[string]string{"password": testutil.TestPassword},
			filename:        "daily.xlsx",
			content:         validWorkbook,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Date is required.",
		},
		{
			name:            "malformed date",
			fields:          testutil.UploadFields("01/04/2025", ""),
			filename:        "daily.xlsx",
			content:         validWorkbook,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid date format. Use YYYY-MM-DD.",
		},
		{
			name:            "impossible date",
			fields:          testutil.UploadFields("2025-02-30", ""),
			filename:        "daily.xlsx",
			content:         validWorkbook,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid date format. Use YYYY-MM-DD.",
		},
		{
			name:            "no file",
			fields:          testutil.UploadFields("2025-04-01", ""),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "No file uploaded.",
		},
		{
			name:            "wrong extension",
			fields:          testutil.UploadFields("2025-04-01", ""),
			filename:        "daily.csv",
			content:         []byte("Campus Name\nNorth\n"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "File must be .xlsx.",
		},
		{
			name:            "missing column",
			fields:          testutil.UploadFields("2025-04-01", ""),
			filename:        "daily.xlsx",
			content:         testutil.BuildWorkbook(t, missingHeaders, testutil.CampusRow("North", 0)[:22]),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required columns in XLSX: Menial Ward",
		},
		{
			name:            "non-numeric metric",
			fields:          testutil.UploadFields("2025-04-01", ""),
			filename:        "daily.xlsx",
			content:         testutil.BuildWorkbook(t, sheet.Headers(), testutil.CampusRow("North", 0), badRow),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: `Invalid data in XLSX: row 3, column "NSO": not a number (value "n/a")`,
		},
		{
			name:           "corrupt workbook",
			fields:         testutil.UploadFields("2025-04-01", ""),
			filename:       "daily.xlsx",
			content:        []byte("definitely not a zip archive"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewUploadRequest(t, tt.fields, tt.filename, tt.content)
			w := httptest.NewRecorder()

			handler.Upload(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.UploadResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != "Data uploaded successfully!" {
					t.Errorf("Unexpected message %q", resp.Message)
				}
				if resp.Rows != tt.expectedRows {
					t.Errorf("Expected %d rows, got %d", tt.expectedRows, resp.Rows)
				}
				return
			}

			var errResp models.ErrorResponse
			testutil.AssertJSON(t, w, &errResp)
			if errResp.Error != http.StatusText(tt.expectedStatus) {
				t.Errorf("Expected error %q, got %q", http.StatusText(tt.expectedStatus), errResp.Error)
			}
			if tt.expectedMessage != "" && errResp.Message != tt.expectedMessage {
				t.Errorf("Expected message %q, got %q", tt.expectedMessage, errResp.Message)
			}
		})
	}
}

func TestUpload_DefaultAcademicYear(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.DefaultAcademicYear = "2030-31"
	handler := NewUploadHandler(conn, cfg)

	workbook := testutil.BuildWorkbook(t, sheet.Headers(), testutil.CampusRow("North", 0))
	req := testutil.NewUploadRequest(t, testutil.UploadFields("2025-04-01", ""), "daily.xlsx", workbook)
	w := httptest.NewRecorder()

	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	records, err := db.FindRecords(context.Background(), conn, "2025-04-01", "2030-31")
	if err != nil {
		t.Fatalf("Expected rows under the configured default year: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
}

func TestUpload_TooLarge(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.MaxUploadBytes = 1024
	handler := NewUploadHandler(conn, cfg)

	req := testutil.NewUploadRequest(t, testutil.UploadFields("2025-04-01", ""), "daily.xlsx",
		[]byte(strings.Repeat("x", 8192)))
	w := httptest.NewRecorder()

	handler.Upload(w, req)

	if w.Code != http.StatusRequestEntityTooLarge && w.Code != http.StatusBadRequest {
		t.Errorf("Expected 413 or 400 for oversized upload, got %d", w.Code)
	}
}

func TestUpload_ReportsRoundedValues(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewUploadHandler(conn, cfg)

	row := testutil.CampusRow("North", 0)
	row[len(row)-1] = 25.5
	workbook := testutil.BuildWorkbook(t, sheet.Headers(), row)
	req := testutil.NewUploadRequest(t, testutil.UploadFields("2025-04-01", ""), "daily.xlsx", workbook)
	w := httptest.NewRecorder()

	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Rounded != 1 {
		t.Errorf("Expected 1 rounded value, got %d", resp.Rounded)
	}

	records, err := db.FindRecords(context.Background(), conn, "2025-04-01", cfg.DefaultAcademicYear)
	if err != nil {
		t.Fatal(err)
	}
	if got := records[0].AvgStudentsPerSec; got == nil || *got != 26 {
		t.Errorf("Expected stored 26, got %v", got)
	}
}

func TestUpload_UnzipLimit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.MaxUploadBytes = 64 << 10
	handler := NewUploadHandler(conn, cfg)

	// Long distinct campus names compress well but expand past the limit
	rows := make([][]any, 100)
	for i := range rows {
		rows[i] = testutil.CampusRow(strings.Repeat("A", 30000)+strconv.Itoa(i), 0)
	}
	workbook := testutil.BuildWorkbook(t, sheet.Headers(), rows...)
	req := testutil.NewUploadRequest(t, testutil.UploadFields("2025-04-01", ""), "daily.xlsx", workbook)
	w := httptest.NewRecorder()

	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if !strings.HasPrefix(errResp.Message, "Error processing file: ") {
		t.Errorf("Unexpected message %q", errResp.Message)
	}

	if _, err := db.FindRecords(context.Background(), conn, "2025-04-01", cfg.DefaultAcademicYear); !errors.Is(err, db.ErrNoRecords) {
		t.Errorf("Expected nothing stored, got %v", err)
	}
}

func TestUpload_UsesAlternateSecret(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.UploadPassword = "rotated"
	handler := NewUploadHandler(conn, cfg)

	workbook := testutil.BuildWorkbook(t, sheet.Headers(), testutil.CampusRow("North", 0))

	// The default test secret no longer works
	req := testutil.NewUploadRequest(t, testutil.UploadFields("2025-04-01", ""), "daily.xlsx", workbook)
	w := httptest.NewRecorder()
	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req = testutil.NewUploadRequest(t, map[string]string{"password": "rotated", "date": "2025-04-01"}, "daily.xlsx", workbook)
	w = httptest.NewRecorder()
	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
