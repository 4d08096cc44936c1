package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, base, name, content string) {
	t.Helper()

	dir := filepath.Join(base, "templates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "readme", wantErr: false},
		{name: "hyphenated", input: "lab-readme", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "traversal", input: "..", wantErr: true},
		{name: "extension", input: "readme.md", wantErr: true},
		{name: "null byte", input: "read\x00me", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

func TestEmbedded_LoadTemplate(t *testing.T) {
	t.Parallel()

	var loader Embedded

	t.Run("readme template", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTemplate(ReadmeTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		for _, want := range []string{"# AsciiDoc Lab Guides", "asciidoctor filename.adoc", "asciidoctor-pdf filename.adoc"} {
			if !strings.Contains(content, want) {
				t.Errorf("readme template missing %q", want)
			}
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("nonexistent")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("../readme")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestNewDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{name: "empty path", setup: func(t *testing.T) string { return "" }},
		{name: "missing directory", setup: func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "missing")
		}},
		{name: "file instead of directory", setup: func(t *testing.T) string {
			p := filepath.Join(t.TempDir(), "file.txt")
			if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
			return p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDir(tt.setup(t))
			if !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewDir() error = %v, want ErrInvalidBasePath", err)
			}
		})
	}
}

func TestDir_LoadTemplate(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTemplate(t, base, "readme", "custom {{.SourceDir}}")

	loader, err := NewDir(base)
	if err != nil {
		t.Fatalf("NewDir() error = %v", err)
	}

	content, err := loader.LoadTemplate("readme")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if content != "custom {{.SourceDir}}" {
		t.Errorf("LoadTemplate() = %q", content)
	}

	if _, err := loader.LoadTemplate("other"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(other) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestDir_SymlinkEscape(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	outside := t.TempDir()
	target := filepath.Join(outside, "secret.md")
	if err := os.WriteFile(target, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(base, "templates", "readme.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewDir(base)
	if err != nil {
		t.Fatalf("NewDir() error = %v", err)
	}

	got, err := loader.LoadTemplate("readme")
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadTemplate() error = %v, want ErrAssetRead", err)
	}
	if got != "" {
		t.Errorf("LoadTemplate() = %q, want nothing read from outside", got)
	}

	// An escaping link is not a missing template: the resolver must not
	// quietly fall back to the built-in one.
	resolver, err := NewResolver(base)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if _, err := resolver.LoadTemplate("readme"); !errors.Is(err, ErrAssetRead) {
		t.Errorf("Resolver.LoadTemplate() error = %v, want ErrAssetRead", err)
	}
}

func TestDir_SymlinkInside(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTemplate(t, base, "base", "shared")
	link := filepath.Join(base, "templates", "readme.md")
	if err := os.Symlink("base.md", link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewDir(base)
	if err != nil {
		t.Fatalf("NewDir() error = %v", err)
	}
	got, err := loader.LoadTemplate("readme")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if got != "shared" {
		t.Errorf("LoadTemplate() = %q, want shared", got)
	}
}

func TestResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := resolver.LoadTemplate(ReadmeTemplateName); err != nil {
			t.Errorf("LoadTemplate() error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeTemplate(t, base, "readme", "override")

		resolver, err := NewResolver(base)
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		got, err := resolver.LoadTemplate(ReadmeTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "override" {
			t.Errorf("LoadTemplate() = %q, want override", got)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		got, err := resolver.LoadTemplate(ReadmeTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, "# AsciiDoc Lab Guides") {
			t.Errorf("expected embedded readme, got %q", got)
		}
	})

	t.Run("invalid name is not retried", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := resolver.LoadTemplate("a/b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := resolver.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}
