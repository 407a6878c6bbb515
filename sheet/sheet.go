// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/campus-report/models"
)

// Extension is the only accepted upload file extension
const Extension = ".xlsx"

var (
	ErrInvalidWorkbook = errors.New("invalid workbook")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrEmptyCampus     = errors.New("campus name is empty")
	ErrNotNumber       = errors.New("not a number")
)

// MissingColumnsError lists the required headers absent from the sheet
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns in XLSX: %s", strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// CellError reports a data cell that does not fit its column.
// Row is the 1-indexed spreadsheet row, counting the header row.
type CellError struct {
	Row    int
	Header string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v (value %q)", e.Row, e.Header, e.Err, e.Value)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// Limits bounds how far an uploaded workbook may expand when unzipped.
// Zero fields fall back to excelize's defaults.
type Limits struct {
	UnzipSize    int64
	UnzipXMLSize int64
}

const (
	unzipRatio      = 16
	maxUnzipXMLSize = 16 << 20
)

// LimitsFor sizes the unzip limits from the largest accepted upload
func LimitsFor(maxUploadBytes int64) Limits {
	unzip := maxUploadBytes * unzipRatio
	return Limits{
		UnzipSize:    unzip,
		UnzipXMLSize: min(unzip, maxUnzipXMLSize),
	}
}

// Result is a parsed sheet. Rounded counts the fractional metric cells
// that were rounded to whole numbers.
type Result struct {
	Records []models.AttendanceRecord
	Rounded int
}

// decimalPattern matches the plain decimals a numeric cell stores
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)$`)

// HasExtension reports whether filename ends in .xlsx
func HasExtension(filename string) bool {
	return strings.HasSuffix(filename, Extension)
}

// Read parses the first worksheet of an .xlsx workbook into records, one
// per non-blank data row, in sheet order. Date and AcademicYear are left
// empty for the caller to fill. Columns beyond the required set are
// ignored. A header-only sheet yields no records.
func Read(r io.Reader, limits Limits) (*Result, error) {
	f, err := excelize.OpenReader(r, excelize.Options{
		UnzipSizeLimit:    limits.UnzipSize,
		UnzipXMLSizeLimit: limits.UnzipXMLSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no worksheets", ErrInvalidWorkbook)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	res := &Result{Records: []models.AttendanceRecord{}}
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		rec, rounded, err := parseRow(rows[i], i+1, index)
		if err != nil {
			return nil, err
		}
		res.Records = append(res.Records, rec)
		res.Rounded += rounded
	}

	return res, nil
}

// indexColumns maps each required header to its cell position. The first
// occurrence wins when a header repeats.
func indexColumns(header []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	index := make([]int, len(Columns))
	var missing []string
	for i, col := range Columns {
		pos, ok := positions[col.Header]
		if !ok {
			missing = append(missing, col.Header)
			continue
		}
		index[i] = pos
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	return index, nil
}

func parseRow(cells []string, rowNum int, index []int) (models.AttendanceRecord, int, error) {
	var rec models.AttendanceRecord
	rounded := 0

	for i, col := range Columns {
		value := cellAt(cells, index[i])

		if col.metric == nil {
			name := strings.TrimSpace(value)
			if name == "" {
				return rec, 0, &CellError{Row: rowNum, Header: col.Header, Value: value, Err: ErrEmptyCampus}
			}
			rec.CampusName = name
			continue
		}

		n, wasRounded, err := parseMetric(value)
		if err != nil {
			return rec, 0, &CellError{Row: rowNum, Header: col.Header, Value: value, Err: err}
		}
		if wasRounded {
			rounded++
		}
		*col.metric(&rec) = n
	}

	return rec, rounded, nil
}

// parseMetric converts a raw cell value to an integer. Empty cells are nil.
// Plain decimals (e.g. an averaged column) round half away from zero and
// report rounded. Exponents, hex and other float spellings are rejected.
func parseMetric(value string) (n *int64, rounded bool, err error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, false, nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &i, false, nil
	}

	if !decimalPattern.MatchString(s) {
		return nil, false, ErrNotNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false, ErrNotNumber
	}
	r := math.Round(f)
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return nil, false, ErrNotNumber
	}
	i := int64(r)
	return &i, r != f, nil
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
