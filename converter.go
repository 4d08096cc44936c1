package md2adoc

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2adoc/internal/inspect"
	"github.com/alnah/go-md2adoc/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.Transformer = (*pipeline.LineTransformer)(nil)

// Converter orchestrates the Markdown-to-AsciiDoc rewrite.
// Create with NewConverter and use Convert for each document.
type Converter struct {
	cfg         converterConfig
	transformer pipeline.Transformer
}

// NewConverter creates a Converter with the default attribute header and
// fixed three-column tables. Use options to customize behavior.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{attributes: pipeline.DefaultAttributes()},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transformer == nil {
		c.transformer = &pipeline.LineTransformer{
			Options: pipeline.TransformOptions{AutoColumns: c.cfg.autoColumns},
		}
	}

	return c
}

// Convert rewrites input.Markdown to AsciiDoc and extracts the document title.
// Any Markdown text is valid input, including the empty string. Returns
// ctx.Err() if the context is done before the rewrite.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	body := c.transformer.Transform(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{
		AsciiDoc: pipeline.InjectHeader(body, c.cfg.attributes),
		Title:    inspect.Title([]byte(input.Markdown)),
	}, nil
}

// ConvertString is a convenience wrapper around Convert for callers that
// only need the AsciiDoc text.
func (c *Converter) ConvertString(ctx context.Context, markdown string) (string, error) {
	result, err := c.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return "", err
	}
	return result.AsciiDoc, nil
}

// Attributes returns a copy of the configured attribute header.
func (c *Converter) Attributes() []Attribute {
	return append([]Attribute(nil), c.cfg.attributes...)
}
