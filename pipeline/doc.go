// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pipeline is the single ticket generation path shared by every entry
point:

	roster.Read -> Generator.Config -> layout.LayoutPage -> PageRenderer -> archive.Writer

Transport adapters only decide how the upload arrives and where the
archive bytes go:

	gen := &pipeline.Generator{Renderer: render.PDF{}, DefaultLogo: logo.Default()}
	res, err := gen.Run(ctx, spreadsheet, form, archive.NewWriter(w))

Pages are built one at a time in input order. Any error aborts the run.
An undecodable uploaded logo is the one exception: it is logged and the
tickets are drawn without a logo.
*/
package pipeline
