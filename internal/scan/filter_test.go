package scan

import (
	"testing"

	"github.com/nbtools/nbscan/internal/notebook"
)

func codeCell(source string) *notebook.Cell {
	return &notebook.Cell{CellType: "code", Source: source}
}

func gradedCell(gradeID string) *notebook.Cell {
	return &notebook.Cell{
		CellType: "code",
		Metadata: map[string]any{
			"nbgrader": map[string]any{"grade_id": gradeID},
		},
	}
}

func TestTypeFilter(t *testing.T) {
	markdown := &notebook.Cell{CellType: "markdown", Source: "# hi"}

	if !TypeFilter("code")(codeCell("x = 1")) {
		t.Error("TypeFilter(code) rejected a code cell")
	}
	if TypeFilter("code")(markdown) {
		t.Error("TypeFilter(code) accepted a markdown cell")
	}
}

func TestGradeIDFilter(t *testing.T) {
	tests := []struct {
		name string
		cell *notebook.Cell
		want bool
	}{
		{"matching id", gradedCell("ex1"), true},
		{"different id", gradedCell("ex2"), false},
		{"no nbgrader metadata", codeCell("x"), false},
	}

	f := GradeIDFilter("ex1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f(tt.cell); got != tt.want {
				t.Errorf("GradeIDFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatternFilter(t *testing.T) {
	re, err := CompilePattern("def HELLO")
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}
	f := PatternFilter(re)

	// Matching is case-insensitive.
	if !f(codeCell("def hello():\n    pass\n")) {
		t.Error("PatternFilter() missed a case-insensitive match")
	}
	if f(codeCell("def goodbye():\n    pass\n")) {
		t.Error("PatternFilter() matched an unrelated cell")
	}
}

func TestCompilePatternInvalid(t *testing.T) {
	if _, err := CompilePattern("["); err == nil {
		t.Error("CompilePattern([) error = nil, want error")
	}
}

func TestAll(t *testing.T) {
	code := TypeFilter("code")
	re, _ := CompilePattern("hello")
	pattern := PatternFilter(re)

	tests := []struct {
		name    string
		filters []Filter
		cell    *notebook.Cell
		want    bool
	}{
		{"empty chain passes everything", nil, codeCell("anything"), true},
		{"all pass", []Filter{code, pattern}, codeCell("def hello()"), true},
		{"one fails", []Filter{code, pattern}, codeCell("def goodbye()"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := All(tt.filters...)(tt.cell); got != tt.want {
				t.Errorf("All() = %v, want %v", got, tt.want)
			}
		})
	}
}
