// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kennethjason07/hallticket-gndecb/archive"
	"github.com/kennethjason07/hallticket-gndecb/layout"
	"github.com/kennethjason07/hallticket-gndecb/logo"
	"github.com/kennethjason07/hallticket-gndecb/models"
	"github.com/kennethjason07/hallticket-gndecb/roster"
)

var ErrInvalidSubjects = errors.New("invalid customSubjects")

// PageRenderer turns one laid-out page into a document.
type PageRenderer interface {
	Render(p layout.Page, w io.Writer) error
}

// Form carries the text options and optional logo of one request as
// submitted. Empty fields fall back to defaults.
type Form struct {
	DeptName          string
	ExamName          string
	Semester          string
	UseManualSubjects string
	CustomSubjects    string
	Logo              []byte
}

// Result summarises one generated archive.
type Result struct {
	Records int
	Pages   int
	Bytes   int64
}

// Generator runs spreadsheet -> layout -> pages -> archive.
type Generator struct {
	Renderer    PageRenderer
	Institution string
	// DefaultLogo is used when a request uploads none; nil means no logo
	DefaultLogo *models.Logo
}

// Config resolves a request's options into a ticket configuration.
func (g *Generator) Config(f Form) (models.TicketConfig, error) {
	cfg := models.TicketConfig{
		Institution: g.Institution,
		DeptName:    f.DeptName,
		ExamName:    f.ExamName,
		Semester:    f.Semester,
		SubjectMode: models.SubjectsFromSheet,
		Logo:        g.DefaultLogo,
	}
	if cfg.Institution == "" {
		cfg.Institution = models.DefaultInstitution
	}
	if cfg.DeptName == "" {
		cfg.DeptName = models.DefaultDeptName
	}
	if cfg.ExamName == "" {
		cfg.ExamName = models.DefaultExamName
	}

	if f.CustomSubjects != "" {
		if err := json.Unmarshal([]byte(f.CustomSubjects), &cfg.CustomSubjects); err != nil {
			return models.TicketConfig{}, fmt.Errorf("%w: %v", ErrInvalidSubjects, err)
		}
	}
	if f.UseManualSubjects == "true" {
		cfg.SubjectMode = models.SubjectsManual
	}

	if len(f.Logo) > 0 {
		l, err := logo.Load(f.Logo)
		if err != nil {
			slog.Warn("logo skipped", "error", err)
		}
		cfg.Logo = l
	}

	return cfg, nil
}

// Run parses the spreadsheet, resolves the form and writes every page into a.
// The archive is closed on success.
func (g *Generator) Run(ctx context.Context, spreadsheet []byte, f Form, a *archive.Writer) (Result, error) {
	records, err := roster.Read(spreadsheet)
	if err != nil {
		return Result{}, err
	}

	cfg, err := g.Config(f)
	if err != nil {
		return Result{}, err
	}

	return g.Generate(ctx, records, cfg, a)
}

// Generate lays out records three to a page in order, renders each page and
// appends it to a as halltickets_page_<n>.pdf, then closes a.
func (g *Generator) Generate(ctx context.Context, records []models.Record, cfg models.TicketConfig, a *archive.Writer) (Result, error) {
	res := Result{Records: len(records)}

	// One timestamp for every document and entry of the request
	stamp := time.Now()
	a.SetModified(stamp)

	var buf bytes.Buffer
	for start := 0; start < len(records); start += layout.TicketsPerPage {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		end := min(start+layout.TicketsPerPage, len(records))
		page := layout.LayoutPage(res.Pages+1, records[start:end], cfg)
		page.Created = stamp

		buf.Reset()
		if err := g.Renderer.Render(page, &buf); err != nil {
			return res, err
		}
		if err := a.Append(page.Name(), &buf); err != nil {
			return res, err
		}
		res.Pages++
	}

	if err := a.Close(); err != nil {
		return res, err
	}
	res.Bytes = a.Size()

	slog.Info("tickets generated",
		"records", res.Records,
		"pages", res.Pages,
		"size", humanize.Bytes(uint64(res.Bytes)),
	)
	return res, nil
}
