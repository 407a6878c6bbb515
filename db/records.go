// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/campus-report/models"
)

var ErrNoRecords = errors.New("no records for date and academic year")

// recordColumns lists campus_data columns in table order, minus id
var recordColumns = []string{
	"date", "academic_year", "campus_name", "strength", "onroll", "present", "absent",
	"nso", "paid", "unpaid", "admission", "tc", "cheques", "using_bus",
	"using_rickshaw", "using_cycle_moped_stand", "conc_50", "conc_40",
	"conc_30", "conc_20", "conc_10", "tw", "mw", "sec", "avg_std_sec",
}

var (
	insertRecordSQL = fmt.Sprintf(
		"INSERT INTO campus_data (%s) VALUES (:%s)",
		strings.Join(recordColumns, ", "),
		strings.Join(recordColumns, ", :"),
	)
	selectRecordsSQL = fmt.Sprintf(
		"SELECT id, %s FROM campus_data WHERE date = ? AND academic_year = ? ORDER BY id",
		strings.Join(recordColumns, ", "),
	)
)

const deleteRecordsSQL = "DELETE FROM campus_data WHERE date = ? AND academic_year = ?"

// ReplaceRecords deletes every row for (date, academicYear) and inserts
// records in order, all inside one transaction. Either the whole batch is
// visible afterwards or the previous rows are. Returns the number of rows
// removed.
func ReplaceRecords(ctx context.Context, conn *sqlx.DB, date, academicYear string, records []models.AttendanceRecord) (int64, error) {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(deleteRecordsSQL), date, academicYear)
	if err != nil {
		return 0, fmt.Errorf("failed to delete previous records: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted records: %w", err)
	}

	for i := range records {
		rec := records[i]
		rec.Date = date
		rec.AcademicYear = academicYear
		if _, err := tx.NamedExecContext(ctx, insertRecordSQL, rec); err != nil {
			return 0, fmt.Errorf("failed to insert record for %q: %w", rec.CampusName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return deleted, nil
}

// FindRecords returns the rows stored for (date, academicYear) in insertion
// order, or ErrNoRecords when there are none.
func FindRecords(ctx context.Context, conn *sqlx.DB, date, academicYear string) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	if err := conn.SelectContext(ctx, &records, conn.Rebind(selectRecordsSQL), date, academicYear); err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
