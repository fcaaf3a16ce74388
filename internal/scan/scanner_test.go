package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nbtools/nbscan/internal/errors"
)

const scannerFixture = `{
  "cells": [
    {"cell_type": "markdown", "metadata": {}, "source": "# Intro\n"},
    {"cell_type": "code", "metadata": {"nbgrader": {"grade_id": "ex1"}},
     "outputs": [], "source": "def hello():\n    pass\n"},
    {"cell_type": "code", "metadata": {}, "outputs": [], "source": "x = 1\n"}
  ],
  "metadata": {},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestScannerScan(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.ipynb", scannerFixture)
	bad := writeFixture(t, dir, "bad.ipynb", "{broken")

	re, err := CompilePattern("def")
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}

	s := &Scanner{Filters: []Filter{TypeFilter("code"), PatternFilter(re)}}
	results, failures := s.Scan([]string{good, bad})

	if len(results) != 1 {
		t.Fatalf("Scan() results = %d, want 1", len(results))
	}
	if results[0].Path != good {
		t.Errorf("Scan() result path = %s, want %s", results[0].Path, good)
	}
	if len(results[0].Cells) != 1 || results[0].Cells[0].Index != 1 {
		t.Errorf("Scan() matched cells = %+v, want cell index 1", results[0].Cells)
	}
	if id, ok := results[0].Cells[0].GradeID(); !ok || id != "ex1" {
		t.Errorf("Scan() grade ID = (%q, %v), want (ex1, true)", id, ok)
	}

	if len(failures) != 1 {
		t.Fatalf("Scan() failures = %d, want 1", len(failures))
	}
	if failures[0].Path != bad || !errors.Is(failures[0].Err, errors.ErrNotJSON) {
		t.Errorf("Scan() failure = %+v, want ErrNotJSON for %s", failures[0], bad)
	}
}

func TestScannerNoFilters(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.ipynb", scannerFixture)

	s := &Scanner{}
	results, failures := s.Scan([]string{good})

	if len(failures) != 0 {
		t.Fatalf("Scan() failures = %v, want none", failures)
	}
	if len(results) != 1 || len(results[0].Cells) != 3 {
		t.Errorf("Scan() with empty chain should match every cell, got %+v", results)
	}
}

func TestScannerFormatVersion(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.ipynb", scannerFixture)

	s := &Scanner{Format: 3}
	results, failures := s.Scan([]string{good})

	if len(results) != 0 || len(failures) != 1 {
		t.Errorf("Scan() with old format cap: results=%d failures=%d, want 0/1",
			len(results), len(failures))
	}
}
