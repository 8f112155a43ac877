// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render executes layout commands with the fpdf backend.

Each layout.Page becomes one single-page A4 document in point units with
zero margins and no automatic page breaks:

	r := render.PDF{Creator: "hallticket", CreatedAt: now}
	err := r.Render(page, w)

Text uses the core Helvetica faces. UTF-8 strings are translated to
cp1252 first, so characters outside that code page are lost.

A logo that fails to register is logged and skipped. Any other backend
failure is returned as *Error.
*/
package render
