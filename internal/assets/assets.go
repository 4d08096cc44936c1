// Package assets loads the Markdown templates rendered next to converted
// documents.
//
// Built-in templates are embedded in the binary. A custom directory laid out
// as <base>/templates/<name>.md overrides them one name at a time:
//
//	Resolver
//	    ├── Dir       custom directory, read through os.Root
//	    └── Embedded  go:embed templates/*.md
package assets

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ReadmeTemplateName names the built-in README template.
const ReadmeTemplateName = "readme"

// Sentinel errors for template loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrAssetRead        = errors.New("failed to read asset")
)

// Loader returns template source by name, without the .md extension.
type Loader interface {
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName accepts bare file stems only: no separators, dots or NUL.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// templatePath is the slash-separated location of a template inside a tree.
func templatePath(name string) string {
	return path.Join("templates", name+".md")
}
