// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the hall ticket service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, gen)

# Endpoints

Health:

	GET /health

Generation (multipart upload, zip download):

	POST /generate                          - Stream the archive
	POST /.netlify/functions/api/generate   - Same, under the function prefix
	POST /.netlify/functions/generate       - Buffered function bridge
	GET  /.netlify/functions/generate       - Answered by the bridge with 405

Browser client:

	GET /           - Upload form
	GET /script.js  - Form submission
	GET /style.css  - Styles

Generation routes are wrapped with middleware.WithLogging. CORS and request
IDs are applied around the whole mux in main.
*/
package router
