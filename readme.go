package md2adoc

import (
	"bytes"
	"fmt"
	"text/template"
)

// ReadmeData is the data passed to the README template.
type ReadmeData struct {
	SourceDir string        // Directory holding the original Markdown files
	Documents []ReadmeEntry // Converted documents, in conversion order
}

// ReadmeEntry describes one converted document.
type ReadmeEntry struct {
	Title string // First level-1 header, or the file name without extension
	File  string // AsciiDoc file name relative to the README
}

// RenderReadme renders the README template loaded from loader.
// A nil loader uses the embedded template.
func RenderReadme(loader AssetLoader, data ReadmeData) (string, error) {
	return RenderReadmeTemplate(loader, DefaultReadmeTemplate, data)
}

// RenderReadmeTemplate renders the named README template loaded from loader.
func RenderReadmeTemplate(loader AssetLoader, name string, data ReadmeData) (string, error) {
	if loader == nil {
		var err error
		if loader, err = NewAssetLoader(""); err != nil {
			return "", err
		}
	}

	content, err := loader.LoadTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrReadmeRender, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadmeRender, err)
	}
	return buf.String(), nil
}
