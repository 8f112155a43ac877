// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kennethjason07/hallticket-gndecb/layout"
	"github.com/kennethjason07/hallticket-gndecb/models"
)

// Error reports a failure of the PDF backend while producing a page.
type Error struct {
	Op   string
	Page int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render %s (page %d): %v", e.Op, e.Page, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PDF renders layout pages as single-page A4 documents.
type PDF struct {
	// Creator is written to the document info dictionary
	Creator string
	// CreatedAt fixes the creation and modification dates; zero falls back to
	// the page's Created stamp, then the current time
	CreatedAt time.Time
}

// Render writes page p as a complete PDF document to w.
func (r PDF) Render(p layout.Page, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(strings.TrimSuffix(p.Name(), ".pdf"), true)
	if r.Creator != "" {
		pdf.SetCreator(r.Creator, true)
	}
	created := r.CreatedAt
	if created.IsZero() {
		created = p.Created
	}
	if !created.IsZero() {
		pdf.SetCreationDate(created)
		pdf.SetModificationDate(created)
	}
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	logos := map[*models.Logo]string{}

	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case layout.Rect:
			pdf.SetLineWidth(c.LineWidth)
			pdf.Rect(c.X, c.Y, c.W, c.H, "D")
		case layout.Line:
			pdf.SetLineWidth(c.LineWidth)
			pdf.Line(c.X1, c.Y1, c.X2, c.Y2)
		case layout.Text:
			drawText(pdf, tr, c)
		case layout.Image:
			drawImage(pdf, logos, p.Number, c)
		}
		if pdf.Err() {
			return &Error{Op: "draw", Page: p.Number, Err: pdf.Error()}
		}
	}

	if err := pdf.Output(w); err != nil {
		return &Error{Op: "output", Page: p.Number, Err: err}
	}
	return nil
}

func drawText(pdf *fpdf.Fpdf, tr func(string) string, t layout.Text) {
	style := ""
	if t.Font == layout.FontBold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, t.Size)

	s := tr(t.Str)
	pdf.SetXY(t.X, t.Y)
	switch t.Align {
	case layout.AlignCenter:
		pdf.CellFormat(t.Width, t.Size, s, "", 0, "CT", false, 0, "")
	default:
		pdf.CellFormat(pdf.GetStringWidth(s), t.Size, s, "", 0, "LT", false, 0, "")
	}
}

// drawImage registers each logo once per document. A logo the backend
// cannot decode is logged and skipped; the rest of the page still renders.
func drawImage(pdf *fpdf.Fpdf, logos map[*models.Logo]string, page int, img layout.Image) {
	if img.Logo == nil {
		return
	}

	name, ok := logos[img.Logo]
	if !ok {
		name = "logo" + strconv.Itoa(len(logos))
		opts := fpdf.ImageOptions{ImageType: img.Logo.Type}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Logo.Data))
		if pdf.Err() {
			slog.Warn("logo skipped", "page", page, "error", pdf.Error())
			pdf.ClearError()
			name = ""
		}
		logos[img.Logo] = name
	}
	if name == "" {
		return
	}

	pdf.ImageOptions(name, img.X, img.Y, img.W, img.H, false, fpdf.ImageOptions{ImageType: img.Logo.Type}, 0, "")
}
