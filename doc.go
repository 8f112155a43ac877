// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hall ticket server.

The server turns an uploaded student roster into printable examination
admission tickets: three per A4 page, one PDF per page, delivered as a
single halltickets.zip download.

# Starting the Server

All settings have defaults, so the server starts with no configuration:

	go run .

Or with flags:

	go run . -p 8080 -institution "GURU NANAK DEV ENGINEERING COLLEGE, BIDAR"

A .env file in the working directory is loaded first. Variables already set
in the environment win over the file.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - INSTITUTION_NAME (-institution): Heading on every ticket
  - DEFAULT_LOGO_PATH (-logo): Logo used when an upload has none (bundled logo if empty)
  - MAX_UPLOAD_MB (-max-upload-mb): Upload size held in memory before spilling to disk (default: 32)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)

# Architecture

  - roster: Spreadsheet and CSV decoding into records
  - logo: Logo decoding and the bundled default
  - layout: Ticket geometry and pagination as drawing commands
  - render: Drawing commands to PDF
  - archive: Streaming zip assembly
  - pipeline: Roster to archive orchestration
  - handlers: Streaming and function entry points
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, CORS, logging, response helpers
  - web: Embedded upload form
  - cliparse: Configuration parsing

The cmd/hallticket command runs the same pipeline from the shell.

See package documentation for each component.
*/
package main
