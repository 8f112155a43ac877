// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package layout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kennethjason07/hallticket-gndecb/models"
)

// A4 in points
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

// Ticket geometry, relative to the ticket's slot anchor unless noted
const (
	boxLeft         = 30.0
	boxRight        = PageWidth - 30
	boxTopOffset    = -40.0
	boxBottomOffset = 240.0

	logoSize = 50.0

	ruleInset = 40.0
	detailX   = 50.0

	subjectStartX   = 70.0
	subjectTop      = 140.0
	subjectMaxWidth = PageWidth - 100
	subjectLineStep = 22.0
	signBoxWidth    = 35.0
	signBoxHeight   = 15.0
	signBoxRaise    = 5.0
	subjectGap      = 10.0
	subjectMargin   = 15.0

	signatureOffset = 200.0
)

const (
	admissionPrefix = "ADMISSION TICKET FOR "
	studentSign     = "Signature of Student"
	hodSign         = "Signature of HOD"
)

// charWidth is the fixed pitch used to estimate text extents at 10pt
const charWidth = 6.0

// EstimateTextWidth approximates the rendered width of s.
func EstimateTextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * charWidth
}

// SubjectPlacement is the position of one subject label and its signature box.
type SubjectPlacement struct {
	Label string
	X, Y  float64
	BoxX  float64
	BoxY  float64
}

// SplitSubjects splits a comma-separated subject string and trims each
// label. Empty labels are kept.
func SplitSubjects(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// LayoutSubjects places subjects left to right starting at (70, top),
// wrapping greedily to a new line 22pt lower whenever the next subject and
// its box would pass the line budget.
func LayoutSubjects(subjects []string, top float64) []SubjectPlacement {
	placements := make([]SubjectPlacement, 0, len(subjects))
	x, y := subjectStartX, top

	for _, sub := range subjects {
		textWidth := EstimateTextWidth(sub)
		total := textWidth + subjectGap + signBoxWidth + subjectMargin
		if x+total > subjectMaxWidth {
			y += subjectLineStep
			x = subjectStartX
		}

		boxX := x + textWidth + subjectGap
		placements = append(placements, SubjectPlacement{
			Label: sub,
			X:     x,
			Y:     y,
			BoxX:  boxX,
			BoxY:  y - signBoxRaise,
		})
		x = boxX + signBoxWidth + subjectMargin
	}

	return placements
}

// RenderTicket draws one complete ticket for r anchored at slot.
func RenderTicket(c *Canvas, r models.Record, slot float64, cfg models.TicketConfig) {
	upper := cases.Upper(language.Und)
	institution := cfg.Institution
	if institution == "" {
		institution = models.DefaultInstitution
	}

	// Outer boundary
	top := slot + boxTopOffset
	c.Rect(boxLeft, top, boxRight-boxLeft, (slot+boxBottomOffset)-top, 1)

	if cfg.Logo != nil {
		c.Image(cfg.Logo, boxLeft+10, slot-10, logoSize, logoSize)
	}

	// Header
	c.CenteredText(FontBold, 13, 0, slot, PageWidth, institution)
	c.CenteredText(FontBold, 10, 0, slot+20, PageWidth, upper.String(cfg.DeptName))
	c.CenteredText(FontBold, 11, 0, slot+40, PageWidth, admissionPrefix+upper.String(cfg.ExamName))
	c.Line(ruleInset, slot+50, PageWidth-ruleInset, slot+50, 0.5)

	// Student details
	c.Text(FontRegular, 10, detailX, slot+80, "1. UNIVERSITY SEAT NO.: "+r.SeatNo()+"     "+cfg.SemesterLabel())
	c.Text(FontRegular, 10, detailX, slot+100, "2. NAME OF THE CANDIDATE: "+r.Name())
	c.Text(FontRegular, 10, detailX, slot+120, "3. SUBJECTS APPLIED:")

	for _, p := range LayoutSubjects(SplitSubjects(r.SubjectsApplied()), slot+subjectTop) {
		c.Text(FontRegular, 10, p.X, p.Y, p.Label)
		c.Rect(p.BoxX, p.BoxY, signBoxWidth, signBoxHeight, 1)
	}

	// Signatures
	sigY := slot + signatureOffset
	c.Text(FontRegular, 10, boxLeft+50, sigY, studentSign)
	c.Text(FontRegular, 10, boxRight-EstimateTextWidth(hodSign)-20, sigY, hodSign)
}
