// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/kennethjason07/hallticket-gndecb/cliparse"
	"github.com/kennethjason07/hallticket-gndecb/handlers"
	"github.com/kennethjason07/hallticket-gndecb/middleware"
	"github.com/kennethjason07/hallticket-gndecb/pipeline"
	"github.com/kennethjason07/hallticket-gndecb/web"
)

func NewRouter(cfg cliparse.Config, gen *pipeline.Generator) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	ticketHandler := handlers.NewTicketHandler(gen, cfg)
	functionHandler := handlers.NewFunctionHandler(gen, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Streaming generation
	mux.HandleFunc("POST /generate", middleware.WithLogging(ticketHandler.Generate))
	mux.HandleFunc("POST /.netlify/functions/api/generate", middleware.WithLogging(ticketHandler.Generate))

	// Buffered function bridge. GET reaches the handler so it can answer 405
	// itself; other methods get the mux's 405
	bridge := middleware.WithLogging(functionHandler.ServeHTTP)
	mux.HandleFunc("POST /.netlify/functions/generate", bridge)
	mux.HandleFunc("GET /.netlify/functions/generate", bridge)

	// Upload form and assets
	mux.Handle("GET /", web.Handler())

	return mux
}
