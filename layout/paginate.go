// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package layout

import (
	"fmt"
	"time"

	"github.com/kennethjason07/hallticket-gndecb/models"
)

// TicketsPerPage is the batch size of the pagination controller
const TicketsPerPage = 3

// Slots are the y anchors of the tickets on a page, by batch position.
var Slots = [TicketsPerPage]float64{50, 310, 570}

// Page is one sealed A4 page of up to three tickets.
type Page struct {
	Number  int
	Tickets int
	// Created stamps the document; zero leaves it to the renderer
	Created time.Time
	Canvas
}

// Name is the archive entry name of the page.
func (p Page) Name() string {
	return PageName(p.Number)
}

// PageName returns "halltickets_page_<n>.pdf".
func PageName(n int) string {
	return fmt.Sprintf("halltickets_page_%d.pdf", n)
}

// PageCount returns ceil(records / 3).
func PageCount(records int) int {
	return (records + TicketsPerPage - 1) / TicketsPerPage
}

// Paginate lays out records three to a page in input order. The input
// records are not modified.
func Paginate(records []models.Record, cfg models.TicketConfig) []Page {
	pages := make([]Page, 0, PageCount(len(records)))
	for start := 0; start < len(records); start += TicketsPerPage {
		end := min(start+TicketsPerPage, len(records))
		pages = append(pages, LayoutPage(len(pages)+1, records[start:end], cfg))
	}
	return pages
}

// LayoutPage lays out one batch of at most three records as page n.
func LayoutPage(n int, batch []models.Record, cfg models.TicketConfig) Page {
	p := Page{Number: n, Tickets: len(batch)}
	for i, r := range batch {
		if cfg.ManualOverride() {
			r = r.WithSubjects(cfg.CustomSubjects)
		}
		RenderTicket(&p.Canvas, r, Slots[i], cfg)
	}
	return p
}
