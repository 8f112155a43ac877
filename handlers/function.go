// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/kennethjason07/hallticket-gndecb/archive"
	"github.com/kennethjason07/hallticket-gndecb/cliparse"
	"github.com/kennethjason07/hallticket-gndecb/middleware"
	"github.com/kennethjason07/hallticket-gndecb/models"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
)

// FunctionHandler builds the whole archive in memory and answers with a
// single buffered response. It holds no state between invocations.
type FunctionHandler struct {
	gen *pipeline.Generator
	cfg cliparse.Config
}

func NewFunctionHandler(gen *pipeline.Generator, cfg cliparse.Config) *FunctionHandler {
	return &FunctionHandler{gen: gen, cfg: cfg}
}

// Handle processes one function event
func (h *FunctionHandler) Handle(ctx context.Context, ev models.FunctionEvent) models.FunctionResponse {
	if ev.HTTPMethod != http.MethodPost {
		return models.FunctionResponse{
			StatusCode: http.StatusMethodNotAllowed,
			Body:       msgMethodNotAllowed,
		}
	}

	mf, err := h.parseEvent(ev)
	if mf != nil {
		defer mf.RemoveAll()
	}
	if err != nil {
		return failure(err)
	}

	u, err := readUpload(mf)
	if errors.Is(err, ErrMissingSpreadsheet) {
		return models.FunctionResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       msgMissingSpreadsheet,
		}
	}
	if err != nil {
		return failure(err)
	}

	var buf bytes.Buffer
	if _, err := h.gen.Run(ctx, u.spreadsheet, u.form, archive.NewWriter(&buf)); err != nil {
		return failure(err)
	}

	return models.FunctionResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":        "application/zip",
			"Content-Disposition": `attachment; filename="` + archive.Filename + `"`,
		},
		Body:            base64.StdEncoding.EncodeToString(buf.Bytes()),
		IsBase64Encoded: true,
	}
}

// parseEvent decodes the multipart body of an event
func (h *FunctionHandler) parseEvent(ev models.FunctionEvent) (*multipart.Form, error) {
	mediaType, params, err := mime.ParseMediaType(ev.Header("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("invalid content type: %w", err)
	}
	if !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}

	body := []byte(ev.Body)
	if ev.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode body: %w", err)
		}
	}

	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	mf, err := mr.ReadForm(int64(h.cfg.MaxUploadMB) << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multipart body: %w", err)
	}
	return mf, nil
}

func failure(err error) models.FunctionResponse {
	slog.Error("ticket generation failed", "error", err)

	body, _ := json.Marshal(models.ErrorResponse{Error: msgGenerateFailed + ": " + err.Error()})
	return models.FunctionResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// ServeHTTP adapts a plain HTTP request to a function event and writes the
// buffered reply back
func (h *FunctionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ev, err := h.eventFromRequest(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		slog.Error("failed to read request body", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	resp := h.Handle(r.Context(), ev)

	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			slog.Error("failed to decode function response", "error", err)
			middleware.TextError(w, http.StatusInternalServerError, msgGenerateFailed)
			return
		}
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(body)
}

func (h *FunctionHandler) eventFromRequest(w http.ResponseWriter, r *http.Request) (models.FunctionEvent, error) {
	ev := models.FunctionEvent{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    make(map[string]string, len(r.Header)),
	}
	for k := range r.Header {
		ev.Headers[k] = r.Header.Get(k)
	}

	if r.Method != http.MethodPost {
		return ev, nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(h.cfg.MaxUploadMB)<<20))
	if err != nil {
		return ev, err
	}
	ev.Body = base64.StdEncoding.EncodeToString(data)
	ev.IsBase64Encoded = true
	return ev, nil
}
