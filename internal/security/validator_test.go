package security

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	v := NewDefaultValidator()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative path rejected", "notebooks/hw.ipynb", true},
		{"blocked system directory", "/etc/passwd", true},
		{"blocked bin directory", "/usr/bin/python", true},
		{"regular absolute path", "/home/grader/notebooks/hw.ipynb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathAllowList(t *testing.T) {
	root := t.TempDir()
	v := NewDefaultValidator().WithAllowedPaths([]string{root})

	if err := v.ValidatePath(filepath.Join(root, "hw.ipynb")); err != nil {
		t.Errorf("ValidatePath() inside allowed root error = %v", err)
	}
	if err := v.ValidatePath("/home/other/hw.ipynb"); err == nil {
		t.Error("ValidatePath() outside allowed root error = nil")
	}
}

func TestSanitizePath(t *testing.T) {
	v := NewDefaultValidator()

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := v.SanitizePath("notebooks/hw.ipynb")
		if err != nil {
			t.Fatalf("SanitizePath() error = %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("SanitizePath() = %q, want absolute path", got)
		}
		if !strings.HasSuffix(got, filepath.Join("notebooks", "hw.ipynb")) {
			t.Errorf("SanitizePath() = %q, lost the original suffix", got)
		}
	})

	t.Run("cleans dot segments", func(t *testing.T) {
		got, err := v.SanitizePath("/data/./notebooks/../hw.ipynb")
		if err != nil {
			t.Fatalf("SanitizePath() error = %v", err)
		}
		if got != "/data/hw.ipynb" {
			t.Errorf("SanitizePath() = %q, want /data/hw.ipynb", got)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := v.SanitizePath(""); err == nil {
			t.Error("SanitizePath(\"\") error = nil, want error")
		}
	})

	t.Run("null byte", func(t *testing.T) {
		if _, err := v.SanitizePath("/data/\x00hw.ipynb"); err == nil {
			t.Error("SanitizePath() with null byte error = nil, want error")
		}
	})
}
