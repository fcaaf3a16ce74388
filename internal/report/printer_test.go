package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nbtools/nbscan/internal/errors"
	"github.com/nbtools/nbscan/internal/notebook"
	"github.com/nbtools/nbscan/internal/scan"
)

func sampleResults() []scan.FileMatches {
	return []scan.FileMatches{
		{
			Path: "hw/hello.ipynb",
			Cells: []scan.CellMatch{
				{
					Index: 1,
					Cell: notebook.Cell{
						CellType: "code",
						Source:   "def hello():\n    pass\n",
						Metadata: map[string]any{
							"nbgrader": map[string]any{"grade_id": "hello_fn"},
						},
					},
				},
				{
					Index: 2,
					Cell: notebook.Cell{
						CellType: "markdown",
						Source:   "# Notes\n",
					},
				},
			},
		},
	}
}

func TestPrinterHits(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	if err := p.Print(sampleResults()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	got := buf.String()
	lines := strings.Split(got, "\n")

	if lines[0] != "hw/hello.ipynb" {
		t.Errorf("first line = %q, want file name", lines[0])
	}
	if lines[1] != strings.Repeat("=", len("hw/hello.ipynb")) {
		t.Errorf("second line = %q, want = underline of the same width", lines[1])
	}
	if !strings.Contains(got, "def hello():") || !strings.Contains(got, "# Notes") {
		t.Errorf("Print() missing cell sources:\n%s", got)
	}
	if strings.Count(got, separator) != 2 {
		t.Errorf("Print() separators = %d, want one per cell", strings.Count(got, separator))
	}
}

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Plain: true}

	if err := p.Print(sampleResults()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "hw/hello.ipynb") {
		t.Errorf("plain output contains file header:\n%s", got)
	}
	if strings.Contains(got, separator) {
		t.Errorf("plain output contains separators:\n%s", got)
	}
	if !strings.Contains(got, "def hello():") {
		t.Errorf("plain output missing cell source:\n%s", got)
	}
}

func TestPrinterTags(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Tags: true}

	if err := p.Print(sampleResults()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "hw/hello.ipynb\n") {
		t.Errorf("tags output missing file name:\n%s", got)
	}
	if !strings.Contains(got, "hello_fn") {
		t.Errorf("tags output missing grade ID:\n%s", got)
	}
	if strings.Contains(got, "def hello") {
		t.Errorf("tags output should not contain cell sources:\n%s", got)
	}
}

func TestPrinterTagsNoGradedCells(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Tags: true}

	results := []scan.FileMatches{
		{
			Path:  "plain.ipynb",
			Cells: []scan.CellMatch{{Cell: notebook.Cell{CellType: "code", Source: "x"}}},
		},
	}
	if err := p.Print(results); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("tags output for an untagged notebook = %q, want empty", buf.String())
	}
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, JSON: true}

	if err := p.Print(sampleResults()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	var matches []struct {
		File     string `json:"file"`
		Index    int    `json:"index"`
		CellType string `json:"cell_type"`
		GradeID  string `json:"grade_id"`
		Source   string `json:"source"`
	}
	if err := json.Unmarshal(buf.Bytes(), &matches); err != nil {
		t.Fatalf("JSON output does not parse: %v\n%s", err, buf.String())
	}

	if len(matches) != 2 {
		t.Fatalf("JSON matches = %d, want 2", len(matches))
	}
	if matches[0].File != "hw/hello.ipynb" || matches[0].Index != 1 {
		t.Errorf("first match = %+v", matches[0])
	}
	if matches[0].GradeID != "hello_fn" || matches[1].GradeID != "" {
		t.Errorf("grade IDs = %q, %q, want hello_fn and empty", matches[0].GradeID, matches[1].GradeID)
	}
}

func TestPrinterFileError(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.PrintFileError(scan.FileError{
		Path: "bad.ipynb",
		Err:  errors.ErrNotJSON,
	})

	got := buf.String()
	if !strings.Contains(got, "bad.ipynb") || !strings.Contains(got, "not a JSON notebook") {
		t.Errorf("PrintFileError() = %q", got)
	}
}
