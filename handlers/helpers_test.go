// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kennethjason07/hallticket-gndecb/layout"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
	"github.com/kennethjason07/hallticket-gndecb/render"
	"github.com/kennethjason07/hallticket-gndecb/testutil"
)

// spyRenderer renders real PDFs and keeps every text string it drew
type spyRenderer struct {
	mu    sync.Mutex
	pdf   render.PDF
	texts []string
	logos int
}

func (s *spyRenderer) Render(p layout.Page, w io.Writer) error {
	s.mu.Lock()
	for _, c := range p.Commands {
		switch c := c.(type) {
		case layout.Text:
			s.texts = append(s.texts, c.Str)
		case layout.Image:
			s.logos++
		}
	}
	s.mu.Unlock()
	return s.pdf.Render(p, w)
}

func (s *spyRenderer) drew(str string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.texts {
		if t == str {
			return true
		}
	}
	return false
}

func (s *spyRenderer) drewContaining(sub string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

func newTestGenerator(t *testing.T) (*pipeline.Generator, *spyRenderer) {
	t.Helper()

	spy := &spyRenderer{pdf: render.PDF{
		Creator:   "hallticket-test",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}}
	return &pipeline.Generator{
		Renderer:    spy,
		Institution: testutil.GetTestConfig().Institution,
	}, spy
}

func rosterFile(t *testing.T, n int) testutil.FormFile {
	return testutil.FormFile{Field: "excelFile", Filename: "students.xlsx", Data: testutil.BuildRoster(t, n)}
}
