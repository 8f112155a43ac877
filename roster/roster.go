// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/kennethjason07/hallticket-gndecb/models"
)

var (
	ErrNoSheet           = errors.New("workbook has no sheets")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// Read decodes an uploaded roster. Office Open XML workbooks are read with
// excelize; anything else that is valid UTF-8 text is read as CSV.
func Read(data []byte) ([]models.Record, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return ReadXLSX(bytes.NewReader(data))
	case bytes.HasPrefix(data, oleMagic):
		return nil, fmt.Errorf("%w: legacy .xls workbook", ErrUnsupportedFormat)
	case utf8.Valid(data):
		return ReadCSV(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadXLSX returns the rows of the workbook's first sheet. The first row
// holds the headers.
func ReadXLSX(r io.Reader) ([]models.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []models.Record{}, nil
	}

	headers := headerNames(rows[0])
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.Record{}
		for i, cell := range row {
			if i >= len(headers) || cell == "" {
				continue
			}
			rec[headers[i]] = cell
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// ReadCSV returns the rows of a comma-separated roster. The first line
// holds the headers.
func ReadCSV(r io.Reader) ([]models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Record{}, nil
	}

	maps, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	records := make([]models.Record, 0, len(maps))
	for _, m := range maps {
		rec := models.Record{}
		for k, v := range m {
			if k == "" || v == "" {
				continue
			}
			rec[k] = v
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// headerNames turns the header row into unique keys. Blank headers become
// "__EMPTY" and repeated names get a numeric suffix ("Name", "Name_1").
func headerNames(row []string) []string {
	seen := make(map[string]int, len(row))
	names := make([]string, len(row))
	for i, h := range row {
		if h == "" {
			h = "__EMPTY"
		}
		name := h
		if n, ok := seen[h]; ok {
			name = h + "_" + strconv.Itoa(n)
		}
		seen[h]++
		names[i] = name
	}
	return names
}
