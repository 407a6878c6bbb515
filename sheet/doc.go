// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet reads the daily campus spreadsheet.

# Format

The first worksheet of an .xlsx workbook; row 1 holds headers, each later
row holds one campus. Headers must match Columns exactly:

	Campus Name, Strength, OnRoll, Present, Absent, NSO, Paid, Unpaid,
	Admission, TC, Cheques, Using Bus, Using Rickshaw,
	Using Cycle/Moped Stand, Conces. 50%, Conces. 40%, Conces. 30%,
	Conces. 20%, Conces. 10%, Teacher's Wards, Menial Ward, Sections,
	Avg. Student Per Section

Extra columns are ignored. Blank rows are skipped.

Metric cells hold whole numbers or plain decimals; decimals round half away
from zero and Result.Rounded counts them. Exponent, hex or other text is
ErrNotNumber. Limits caps how far the workbook may expand when unzipped;
LimitsFor derives them from the upload size cap.

# Errors

  - ErrInvalidWorkbook: the upload is not a readable workbook
  - *MissingColumnsError (errors.Is ErrMissingColumns): headers absent
  - *CellError: a data cell does not fit its column (ErrEmptyCampus,
    ErrNotNumber)

Read stops at the first bad row; callers reject the whole upload.
*/
package sheet
