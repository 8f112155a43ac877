// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command hallticket generates and inspects hall ticket archives offline.
package main

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func main() {
	api.DisableConfigDir()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
