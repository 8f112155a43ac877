// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package layout computes admission ticket geometry as ordered draw commands.

Nothing here touches a PDF library. A Canvas collects Rect, Line, Text and
Image commands in points, origin top-left, on an A4 page (595.28 x 841.89).
The render package turns a Page's commands into a document.

# Tickets

RenderTicket draws one ticket anchored at a slot y:

	slot-40 .. slot+240   outer box, x 30 .. pageWidth-30
	slot                  institution (bold 13, centered)
	slot+20               department, upper-cased (bold 10)
	slot+40               "ADMISSION TICKET FOR " + exam (bold 11)
	slot+50               rule
	slot+80/100/120       seat + semester, name, subjects caption
	slot+140              subjects with signature boxes
	slot+200              signature captions

Subject widths are estimated at 6pt per character (EstimateTextWidth).
LayoutSubjects wraps first-fit with no lookahead.

# Pages

Paginate groups records three at a time and anchors them at Slots
(50, 310, 570) by position in the batch.
*/
package layout
