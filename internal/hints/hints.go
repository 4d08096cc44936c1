// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-md2adoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2adoc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoInput returns hints when no input path was given.
func ForNoInput() string {
	return format("pass a file or directory, set input.defaultDir in config, or MD2ADOC_INPUT_DIR")
}

// ForRenderer returns hints when asciidoctor tools are missing.
func ForRenderer(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("install with 'gem install " + strings.Join(missing, " ") + "'")
}

// ForTemplateNotFound returns hints for missing custom README templates.
func ForTemplateNotFound(basePath string) string {
	if basePath == "" {
		return ""
	}
	return format("expected " + basePath + "/templates/<name>.md")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
