package assets

import "errors"

// Resolver asks each layer in turn and stops at the first answer that is
// not ErrTemplateNotFound. The custom directory, if any, comes first.
type Resolver struct {
	layers []Loader
}

// NewResolver layers customDir over the built-in templates.
// An empty customDir means built-in templates only.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{}
	if customDir != "" {
		dir, err := NewDir(customDir)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, dir)
	}
	r.layers = append(r.layers, Embedded{})
	return r, nil
}

// LoadTemplate implements Loader.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		if content, err = layer.LoadTemplate(name); !errors.Is(err, ErrTemplateNotFound) {
			return content, err
		}
	}
	return "", err
}

var _ Loader = (*Resolver)(nil)
