// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logo decodes ticket logos and carries the bundled default.
package logo
