// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package archive assembles generated pages into a zip stream.

	a := archive.NewWriter(w)
	a.Append("halltickets_page_1.pdf", page1)
	a.Close()

Entries may be appended before the total count is known. The destination
can be an http.ResponseWriter for direct streaming or a bytes.Buffer when
the caller must hold the whole archive before replying.
*/
package archive
