package notebook

import (
	"strings"
	"testing"
)

func TestFormatNotebook(t *testing.T) {
	path := writeNotebook(t, "sample.ipynb", sampleNotebook)
	nb, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	got := nb.Format(path)

	for _, want := range []string{
		"Jupyter Notebook: sample.ipynb",
		"Format: v4.5",
		"Total cells: 3",
		"Cell 1 (ID: abc123) [code] [nbgrader: hello_fn] [2]:",
		"  1: def hello():",
		"Output 1: stream: hi",
		"Source: (empty)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatOutputData(t *testing.T) {
	tests := []struct {
		name   string
		output any
		want   string
	}{
		{
			name:   "stream",
			output: map[string]any{"output_type": "stream", "text": "hi"},
			want:   "stream: hi",
		},
		{
			name: "execute result",
			output: map[string]any{
				"output_type": "execute_result",
				"data":        map[string]any{"text/plain": "42"},
			},
			want: "execute_result: 42",
		},
		{
			name: "error with value",
			output: map[string]any{
				"output_type": "error",
				"ename":       "NameError",
				"evalue":      "name 'x' is not defined",
			},
			want: "error: NameError: name 'x' is not defined",
		},
		{
			name:   "unknown shape",
			output: "raw",
			want:   "raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatOutputData(tt.output); got != tt.want {
				t.Errorf("formatOutputData() = %q, want %q", got, tt.want)
			}
		})
	}
}
