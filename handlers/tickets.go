// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kennethjason07/hallticket-gndecb/archive"
	"github.com/kennethjason07/hallticket-gndecb/cliparse"
	"github.com/kennethjason07/hallticket-gndecb/middleware"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
)

type TicketHandler struct {
	gen *pipeline.Generator
	cfg cliparse.Config
}

func NewTicketHandler(gen *pipeline.Generator, cfg cliparse.Config) *TicketHandler {
	return &TicketHandler{gen: gen, cfg: cfg}
}

// Generate handles POST /generate and streams the archive as it is built
func (h *TicketHandler) Generate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	// Parts beyond the memory limit are staged in temp files
	err := r.ParseMultipartForm(int64(h.cfg.MaxUploadMB) << 20)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	if errors.Is(err, http.ErrNotMultipart) {
		middleware.TextError(w, http.StatusBadRequest, msgMissingSpreadsheet)
		return
	}
	if err != nil {
		slog.Error("failed to parse upload", "error", err, "request_id", requestID)
		middleware.TextError(w, http.StatusInternalServerError, msgGenerateFailed)
		return
	}

	u, err := readUpload(r.MultipartForm)
	if errors.Is(err, ErrMissingSpreadsheet) {
		middleware.TextError(w, http.StatusBadRequest, msgMissingSpreadsheet)
		return
	}
	if err != nil {
		slog.Error("failed to read upload", "error", err, "request_id", requestID)
		middleware.TextError(w, http.StatusInternalServerError, msgGenerateFailed)
		return
	}

	zw := &zipResponse{w: w}
	_, err = h.gen.Run(r.Context(), u.spreadsheet, u.form, archive.NewWriter(zw))
	if err == nil {
		return
	}

	slog.Error("ticket generation failed", "error", err, "request_id", requestID)
	if zw.started {
		// Part of the archive already went out; drop the connection so the
		// client cannot mistake it for a complete download
		panic(http.ErrAbortHandler)
	}
	middleware.TextError(w, http.StatusInternalServerError, msgGenerateFailed)
}

// zipResponse commits the success headers on the first archive byte
type zipResponse struct {
	w       http.ResponseWriter
	started bool
}

func (z *zipResponse) Write(p []byte) (int, error) {
	if !z.started {
		z.started = true
		setZipHeaders(z.w.Header())
		z.w.WriteHeader(http.StatusOK)
	}
	return z.w.Write(p)
}

func setZipHeaders(h http.Header) {
	h.Set("Content-Type", "application/zip")
	h.Set("Content-Disposition", `attachment; filename="`+archive.Filename+`"`)
}
