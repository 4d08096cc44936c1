package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir serves templates from a directory on disk. Every read opens the
// directory as an os.Root, so neither names nor symlinks reach outside it.
type Dir struct {
	base string
}

// NewDir checks that base is an existing directory.
func NewDir(base string) (*Dir, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, abs)
	}

	return &Dir{base: abs}, nil
}

// LoadTemplate implements Loader.
func (d *Dir) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(d.base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer root.Close()

	data, err := fs.ReadFile(root.FS(), templatePath(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, d.base)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

var _ Loader = (*Dir)(nil)
