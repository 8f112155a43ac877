// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kennethjason07/hallticket-gndecb/testutil"
)

func writeRoster(t *testing.T, n int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.xlsx")
	if err := os.WriteFile(path, testutil.BuildRoster(t, n), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateCommand(t *testing.T) {
	rosterPath := writeRoster(t, 5)
	output := filepath.Join(t.TempDir(), "out.zip")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"generate", rosterPath, "-o", output, "--semester", "6", "--subjects", "MATH101,PHY102"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out.String(), "5 tickets on 2 pages") {
		t.Errorf("Unexpected summary %q", out.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read archive: %v", err)
	}
	entries := testutil.ReadZip(t, data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if n := testutil.PageCount(t, e.Data); n != 1 {
			t.Errorf("Entry %s: expected 1 page, got %d", e.Name, n)
		}
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "roster.bin")
	if err := os.WriteFile(garbage, []byte{0xff, 0xfe, 0x00}, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing roster", []string{"generate", filepath.Join(dir, "nope.xlsx")}},
		{"unreadable roster", []string{"generate", garbage}},
		{"bad logo", []string{"generate", writeRoster(t, 1), "--logo", garbage, "-o", filepath.Join(dir, "x.zip")}},
		{"no roster argument", []string{"generate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "x.zip")); !os.IsNotExist(err) {
		t.Error("Failed run must not leave an archive behind")
	}
}

func TestInspectCommand(t *testing.T) {
	rosterPath := writeRoster(t, 7)
	output := filepath.Join(t.TempDir(), "halltickets.zip")

	gen := newRootCmd()
	gen.SetOut(&bytes.Buffer{})
	gen.SetArgs([]string{"generate", rosterPath, "-o", output})
	if err := gen.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"inspect", output})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"halltickets_page_1.pdf", "halltickets_page_3.pdf", "3 entries"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}
}

func TestInspectRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.zip")
	if err := os.WriteFile(path, []byte("plain text"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"inspect", path})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for non-zip input")
	}
}
