// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request and response types shared by the
roster reader, layout engine and HTTP adapters.

# Domain Types

  - Record: one roster row, column header -> cell text
  - TicketConfig: department, exam, semester, logo and subject mode for a request
  - Logo: image bytes plus the type tag used by the PDF backend

Recognized columns:

	FieldSeatNo          = "Seat No"
	FieldName            = "Name"
	FieldSubjectsApplied = "Subjects Applied"

Missing columns read as the empty string.

# Subject Modes

	SubjectsFromSheet = "fromSheet"
	SubjectsManual    = "manual"

In manual mode a non-empty CustomSubjects list replaces every record's
"Subjects Applied" value with the list joined by ", ".

# Function Envelope

Types for the stateless function entry point:

  - FunctionEvent: httpMethod, headers, body, isBase64Encoded
  - FunctionResponse: statusCode, headers, body, isBase64Encoded
  - ErrorResponse: error
*/
package models
