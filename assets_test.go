package md2adoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader(\"\") error = %v", err)
		}
		content, err := loader.LoadTemplate(DefaultReadmeTemplate)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(content, "{{.SourceDir}}") {
			t.Errorf("embedded README template missing SourceDir placeholder")
		}
	})

	t.Run("custom template overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTemplate(t, dir, "readme", "custom {{.SourceDir}}")

		loader, err := NewAssetLoader(dir)
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}
		content, err := loader.LoadTemplate("readme")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if content != "custom {{.SourceDir}}" {
			t.Errorf("LoadTemplate() = %q", content)
		}
	})

	t.Run("missing custom template falls back to embedded", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetLoader() error = %v", err)
		}
		if _, err := loader.LoadTemplate("readme"); err != nil {
			t.Errorf("LoadTemplate() error = %v, want embedded fallback", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestAssetLoader_Errors(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	tests := []struct {
		name string
		want error
	}{
		{name: "unknown", want: ErrTemplateNotFound},
		{name: "../readme", want: ErrTemplateNotFound},
		{name: "", want: ErrTemplateNotFound},
	}

	for _, tt := range tests {
		if _, err := loader.LoadTemplate(tt.name); !errors.Is(err, tt.want) {
			t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func writeTemplate(t *testing.T, base, name, content string) {
	t.Helper()

	dir := filepath.Join(base, "templates")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
}
