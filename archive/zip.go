// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package archive

import (
	"archive/zip"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"time"
)

// Filename is the download name of the generated archive
const Filename = "halltickets.zip"

var ErrClosed = errors.New("archive is closed")

// Writer streams named entries into a zip archive compressed at the best
// deflate level. Entries are written in the order they are appended.
type Writer struct {
	zw       *zip.Writer
	cw       *countingWriter
	modified time.Time
	entries  int
	closed   bool
}

// NewWriter starts an archive on w. Nothing is written until the first
// Append.
func NewWriter(w io.Writer) *Writer {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return &Writer{zw: zw, cw: cw, modified: time.Now()}
}

// SetModified fixes the timestamp recorded on subsequent entries.
func (a *Writer) SetModified(t time.Time) {
	a.modified = t
}

// Append copies r into a new entry called name.
func (a *Writer) Append(name string, r io.Reader) error {
	if a.closed {
		return ErrClosed
	}

	fw, err := a.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: a.modified,
	})
	if err != nil {
		return fmt.Errorf("failed to create entry %s: %w", name, err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", name, err)
	}
	a.entries++
	return nil
}

// Entries returns the number of entries appended so far.
func (a *Writer) Entries() int {
	return a.entries
}

// Size returns the number of bytes written to the underlying writer.
func (a *Writer) Size() int64 {
	return a.cw.n
}

// Close writes the central directory. It does not close the underlying writer.
func (a *Writer) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if err := a.zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
