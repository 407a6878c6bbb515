package models

// Upload form field names
const (
	FieldPassword     = "password"
	FieldDate         = "date"
	FieldAcademicYear = "academic_year"
	FieldFile         = "file"
)

// DateLayout is the only accepted date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Domain types

// AttendanceRecord is one campus's figures for a date and academic year.
// Metrics are nil when the spreadsheet cell was empty.
type AttendanceRecord struct {
	ID                   int64  `db:"id" json:"-"`               // Never expose in JSON
	Date                 string `db:"date" json:"-"`             // Implied by the query
	AcademicYear         string `db:"academic_year" json:"academic_year"`
	CampusName           string `db:"campus_name" json:"campus_name"`
	Strength             *int64 `db:"strength" json:"strength"`
	OnRoll               *int64 `db:"onroll" json:"onroll"`
	Present              *int64 `db:"present" json:"present"`
	Absent               *int64 `db:"absent" json:"absent"`
	NSO                  *int64 `db:"nso" json:"nso"`
	Paid                 *int64 `db:"paid" json:"paid"`
	Unpaid               *int64 `db:"unpaid" json:"unpaid"`
	Admission            *int64 `db:"admission" json:"admission"`
	TC                   *int64 `db:"tc" json:"tc"`
	Cheques              *int64 `db:"cheques" json:"cheques"`
	UsingBus             *int64 `db:"using_bus" json:"using_bus"`
	UsingRickshaw        *int64 `db:"using_rickshaw" json:"using_rickshaw"`
	UsingCycleMopedStand *int64 `db:"using_cycle_moped_stand" json:"using_cycle_moped_stand"`
	Conc50               *int64 `db:"conc_50" json:"conc_50"`
	Conc40               *int64 `db:"conc_40" json:"conc_40"`
	Conc30               *int64 `db:"conc_30" json:"conc_30"`
	Conc20               *int64 `db:"conc_20" json:"conc_20"`
	Conc10               *int64 `db:"conc_10" json:"conc_10"`
	TeachersWards        *int64 `db:"tw" json:"tw"`
	MenialWard           *int64 `db:"mw" json:"mw"`
	Sections             *int64 `db:"sec" json:"sec"`
	AvgStudentsPerSec    *int64 `db:"avg_std_sec" json:"avg_std_sec"`
}

// Response types

type UploadResponse struct {
	Message string `json:"message"`
	Rows    int    `json:"rows"`
	Rounded int    `json:"rounded,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
