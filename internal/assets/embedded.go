package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var builtin embed.FS

// Embedded serves the templates compiled into the binary.
type Embedded struct{}

// LoadTemplate implements Loader.
func (Embedded) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := builtin.ReadFile(templatePath(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not built in", ErrTemplateNotFound, name)
	}
	return string(data), nil
}

var _ Loader = Embedded{}
