// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - Institution: Name printed at the top of every ticket
  - DefaultLogoPath: Logo used when a request uploads none (default: bundled logo)
  - MaxUploadMB: Multipart memory limit before uploads spill to temp files (default: 32)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p              Server port
	-institution    Institution name
	-logo           Default logo file
	-max-upload-mb  Upload memory limit
	-log-level      Log level
	-log-format     Log format

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	INSTITUTION_NAME  → -institution
	DEFAULT_LOGO_PATH → -logo
	MAX_UPLOAD_MB     → -max-upload-mb
	LOG_LEVEL         → -log-level
	LOG_FORMAT        → -log-format

CLI flags take precedence over environment variables. LoadEnv reads a
.env file into the environment first; variables already set are kept.

# Logging

NewLogger builds the slog logger for LogLevel and LogFormat:

	logger, err := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

# Example

	// In main.go
	if err := cliparse.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	mux := router.NewRouter(cfg, gen)
*/
package cliparse
