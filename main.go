package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/kennethjason07/hallticket-gndecb/cliparse"
	"github.com/kennethjason07/hallticket-gndecb/logo"
	"github.com/kennethjason07/hallticket-gndecb/middleware"
	"github.com/kennethjason07/hallticket-gndecb/models"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
	"github.com/kennethjason07/hallticket-gndecb/render"
	"github.com/kennethjason07/hallticket-gndecb/router"
)

func main() {
	var err error

	if err := cliparse.LoadEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		slog.Error("Error configuring logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Resolve the logo used when an upload carries none
	var defaultLogo *models.Logo
	if cfg.DefaultLogoPath != "" {
		defaultLogo, err = logo.LoadFile(cfg.DefaultLogoPath)
		if err != nil {
			slog.Error("default logo unreadable", "path", cfg.DefaultLogoPath, "error", err)
			os.Exit(1)
		}
	} else {
		defaultLogo = logo.Default()
	}

	gen := &pipeline.Generator{
		Renderer:    render.PDF{Creator: "hallticket"},
		Institution: cfg.Institution,
		DefaultLogo: defaultLogo,
	}

	// Create router
	mux := router.NewRouter(cfg, gen)

	// Create server
	server := http.Server{
		Handler: middleware.WithRequestID(middleware.CORS(mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "institution", cfg.Institution, "max_upload_mb", cfg.MaxUploadMB)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
