// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster turns an uploaded spreadsheet into an ordered list of records.

Only the first sheet of a workbook is read. Its first row names the columns
and every later row becomes one models.Record, in sheet order:

	records, err := roster.Read(upload)

Rows whose cells are all empty are skipped. Empty cells are left out of the
record, so lookups of missing fields return "".

CSV files are accepted too. Legacy binary .xls workbooks are rejected with
ErrUnsupportedFormat.
*/
package roster
