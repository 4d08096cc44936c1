package md2adoc

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2adoc/internal/assets"
)

// DefaultReadmeTemplate is the name of the built-in README template.
const DefaultReadmeTemplate = assets.ReadmeTemplateName

// AssetLoader returns a Markdown template by name, without the .md extension.
// A missing template is reported as ErrTemplateNotFound.
type AssetLoader interface {
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader layers templates found under basePath/templates over the
// built-in ones. An empty basePath yields the built-in set alone; a basePath
// that is not a directory yields ErrInvalidAssetPath.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return publicLoader{inner: resolver}, nil
}

// publicLoader translates internal sentinels into the package's own.
type publicLoader struct {
	inner assets.Loader
}

func (l publicLoader) LoadTemplate(name string) (string, error) {
	content, err := l.inner.LoadTemplate(name)
	return content, convertAssetError(err)
}

func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
