// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/xuri/excelize/v2"

	"github.com/kennethjason07/hallticket-gndecb/cliparse"
)

func init() {
	api.DisableConfigDir()
}

// BuildWorkbook returns xlsx bytes whose first sheet holds the given rows
func BuildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("Failed to build cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("Failed to set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

// BuildRoster returns a workbook with n students, each with two subjects
func BuildRoster(t *testing.T, n int) []byte {
	t.Helper()

	rows := [][]interface{}{{"Seat No", "Name", "Subjects Applied"}}
	for i := 0; i < n; i++ {
		rows = append(rows, []interface{}{
			"3GN21IS00" + string(rune('0'+i%10)),
			"Student " + string(rune('A'+i%26)),
			"BCS601, BCS602",
		})
	}
	return BuildWorkbook(t, rows)
}

// BuildPNG returns a small solid-colour PNG
func BuildPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// FormFile is one file part of a multipart upload
type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

// MultipartBody encodes fields and files and returns the body with its content type
func MultipartBody(t *testing.T, fields map[string]string, files ...FormFile) ([]byte, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("Failed to create form file %s: %v", f.Field, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			t.Fatalf("Failed to write form file %s: %v", f.Field, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return buf.Bytes(), mw.FormDataContentType()
}

// MakeUploadRequest creates a multipart HTTP test request
func MakeUploadRequest(t *testing.T, method, path string, fields map[string]string, files ...FormFile) *http.Request {
	t.Helper()

	body, contentType := MultipartBody(t, fields, files...)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3000,
		Institution: "GURU NANAK DEV ENGINEERING COLLEGE, BIDAR",
		MaxUploadMB: 8,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// ZipEntry is one decoded archive member
type ZipEntry struct {
	Name string
	Data []byte
}

// ReadZip decodes every entry of a zip archive in order
func ReadZip(t *testing.T, data []byte) []ZipEntry {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}

	entries := make([]ZipEntry, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read entry %s: %v", f.Name, err)
		}
		entries = append(entries, ZipEntry{Name: f.Name, Data: b})
	}
	return entries
}

// PageCount returns the number of pages in a PDF document
func PageCount(t *testing.T, pdf []byte) int {
	t.Helper()

	n, err := api.PageCount(bytes.NewReader(pdf), nil)
	if err != nil {
		t.Fatalf("Failed to count PDF pages: %v", err)
	}
	return n
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
