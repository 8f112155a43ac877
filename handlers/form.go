// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/kennethjason07/hallticket-gndecb/pipeline"
)

// Multipart field names
const (
	fieldExcelFile         = "excelFile"
	fieldLogoFile          = "logoFile"
	fieldDeptName          = "deptName"
	fieldExamName          = "examName"
	fieldSemester          = "semester"
	fieldUseManualSubjects = "useManualSubjects"
	fieldCustomSubjects    = "customSubjects"
)

// Response bodies
const (
	msgMissingSpreadsheet = "No Excel file uploaded."
	msgGenerateFailed     = "Error generating tickets"
	msgMethodNotAllowed   = "Method Not Allowed"
)

var ErrMissingSpreadsheet = errors.New("no spreadsheet uploaded")

// upload is a decoded ticket request
type upload struct {
	spreadsheet []byte
	form        pipeline.Form
}

// readUpload extracts the spreadsheet, optional logo and text options from
// a parsed multipart form. A zero-length spreadsheet counts as missing.
func readUpload(mf *multipart.Form) (upload, error) {
	var u upload
	if mf == nil {
		return u, ErrMissingSpreadsheet
	}

	spreadsheet, err := readFile(mf, fieldExcelFile)
	if err != nil {
		return u, err
	}
	if len(spreadsheet) == 0 {
		return u, ErrMissingSpreadsheet
	}
	u.spreadsheet = spreadsheet

	u.form.Logo, err = readFile(mf, fieldLogoFile)
	if err != nil {
		return u, err
	}

	u.form.DeptName = formValue(mf, fieldDeptName)
	u.form.ExamName = formValue(mf, fieldExamName)
	u.form.Semester = formValue(mf, fieldSemester)
	u.form.UseManualSubjects = formValue(mf, fieldUseManualSubjects)
	u.form.CustomSubjects = formValue(mf, fieldCustomSubjects)

	return u, nil
}

// readFile returns the first file uploaded under field, or nil
func readFile(mf *multipart.Form, field string) ([]byte, error) {
	files := mf.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	f, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	return data, nil
}

func formValue(mf *multipart.Form, field string) string {
	if v := mf.Value[field]; len(v) > 0 {
		return v[0]
	}
	return ""
}
