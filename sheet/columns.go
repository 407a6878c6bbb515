// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import "github.com/danielhkuo/campus-report/models"

// CampusHeader is the only text column; every other column is a metric
const CampusHeader = "Campus Name"

// Column maps a spreadsheet header to a campus_data field
type Column struct {
	Header string
	Field  string
	metric func(*models.AttendanceRecord) **int64
}

// Columns is the required header set, in spreadsheet order.
// Headers are matched exactly (case and punctuation included).
var Columns = []Column{
	{Header: CampusHeader, Field: "campus_name"},
	{"Strength", "strength", func(r *models.AttendanceRecord) **int64 { return &r.Strength }},
	{"OnRoll", "onroll", func(r *models.AttendanceRecord) **int64 { return &r.OnRoll }},
	{"Present", "present", func(r *models.AttendanceRecord) **int64 { return &r.Present }},
	{"Absent", "absent", func(r *models.AttendanceRecord) **int64 { return &r.Absent }},
	{"NSO", "nso", func(r *models.AttendanceRecord) **int64 { return &r.NSO }},
	{"Paid", "paid", func(r *models.AttendanceRecord) **int64 { return &r.Paid }},
	{"Unpaid", "unpaid", func(r *models.AttendanceRecord) **int64 { return &r.Unpaid }},
	{"Admission", "admission", func(r *models.AttendanceRecord) **int64 { return &r.Admission }},
	{"TC", "tc", func(r *models.AttendanceRecord) **int64 { return &r.TC }},
	{"Cheques", "cheques", func(r *models.AttendanceRecord) **int64 { return &r.Cheques }},
	{"Using Bus", "using_bus", func(r *models.AttendanceRecord) **int64 { return &r.UsingBus }},
	{"Using Rickshaw", "using_rickshaw", func(r *models.AttendanceRecord) **int64 { return &r.UsingRickshaw }},
	{"Using Cycle/Moped Stand", "using_cycle_moped_stand", func(r *models.AttendanceRecord) **int64 { return &r.UsingCycleMopedStand }},
	{"Conces. 50%", "conc_50", func(r *models.AttendanceRecord) **int64 { return &r.Conc50 }},
	{"Conces. 40%", "conc_40", func(r *models.AttendanceRecord) **int64 { return &r.Conc40 }},
	{"Conces. 30%", "conc_30", func(r *models.AttendanceRecord) **int64 { return &r.Conc30 }},
	{"Conces. 20%", "conc_20", func(r *models.AttendanceRecord) **int64 { return &r.Conc20 }},
	{"Conces. 10%", "conc_10", func(r *models.AttendanceRecord) **int64 { return &r.Conc10 }},
	{"Teacher's Wards", "tw", func(r *models.AttendanceRecord) **int64 { return &r.TeachersWards }},
	{"Menial Ward", "mw", func(r *models.AttendanceRecord) **int64 { return &r.MenialWard }},
	{"Sections", "sec", func(r *models.AttendanceRecord) **int64 { return &r.Sections }},
	{"Avg. Student Per Section", "avg_std_sec", func(r *models.AttendanceRecord) **int64 { return &r.AvgStudentsPerSec }},
}

// Headers returns the required header names in spreadsheet order
func Headers() []string {
	headers := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = col.Header
	}
	return headers
}
