// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the browser upload form served at the site root.
// script.js posts the form to /generate and saves the returned zip.
package web
