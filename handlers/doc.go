// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP and function entry points that turn an
uploaded roster into a zip of hall ticket PDFs.

# Handler Types

Both handlers wrap a *pipeline.Generator and the server Config:

  - TicketHandler: streams the archive to the client as pages are rendered
  - FunctionHandler: builds the archive in memory and returns it base64 encoded

Both are built from the same generator:

	tickets := handlers.NewTicketHandler(gen, cfg)
	fn := handlers.NewFunctionHandler(gen, cfg)

# Upload Fields

Requests are multipart/form-data:

	excelFile          roster spreadsheet (required)
	logoFile           logo image (optional)
	deptName           department, default "INFORMATION SCIENCE ENGINEERING"
	examName           exam title, default "B.E EXAMINATION JUNE / JULY 2025"
	semester           shown as "Semester: Not specified" when empty
	useManualSubjects  "true" enables manual mode
	customSubjects     JSON array of subject codes

# Responses

	200  application/zip, attachment; filename="halltickets.zip"
	400  "No Excel file uploaded."
	405  "Method Not Allowed" (function only)
	500  "Error generating tickets" (server)
	     {"error": "Error generating tickets: ..."} (function)

A streaming failure after the first archive byte aborts the connection
instead of sending a 500.
*/
package handlers
