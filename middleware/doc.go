// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

Tag every request with a UUID (an incoming X-Request-ID is kept when it
parses as one):

	server := http.Server{
		Handler: middleware.WithRequestID(middleware.CORS(mux)),
	}

Handlers read it back with middleware.RequestID(r.Context()).

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /generate", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# CORS Middleware

Allows GET, POST and OPTIONS with Content-Type and X-Request-ID headers,
and exposes Content-Disposition so browsers can read the archive name.

# Response Helpers

	middleware.TextError(w, http.StatusBadRequest, "No Excel file uploaded.")
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Error generating tickets: ...")
	middleware.JSONResponse(w, http.StatusOK, data)

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
