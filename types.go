package md2adoc

import "github.com/alnah/go-md2adoc/internal/pipeline"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	AsciiDoc string // Complete AsciiDoc document, attribute header included
	Title    string // Text of the first level-1 header, empty if none
}

// Attribute is an AsciiDoc document attribute (":name: value").
// An empty Value renders as a bare ":name:" flag.
type Attribute = pipeline.Attribute

// DefaultAttributes returns the attribute header prepended by default:
//
//	:toc:
//	:toclevels: 3
//	:numbered:
//	:source-highlighter: highlightjs
//	:icons: font
func DefaultAttributes() []Attribute {
	return pipeline.DefaultAttributes()
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	attributes  []Attribute
	autoColumns bool
}

// WithAttributes replaces the document attribute header.
// Called with no attributes, the converted document has no header.
func WithAttributes(attrs ...Attribute) Option {
	return func(c *Converter) {
		c.cfg.attributes = append([]Attribute(nil), attrs...)
	}
}

// WithAutoColumns sizes each table's column spec from its header row
// instead of the fixed "1,1,1".
func WithAutoColumns(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.autoColumns = enabled
	}
}
