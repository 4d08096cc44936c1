package pipeline

import "strings"

// Attribute is an AsciiDoc document attribute entry (":name: value").
// An empty Value renders as a bare ":name:" flag.
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// DefaultAttributes returns the document header used for lab guides:
// table of contents with three levels, numbered sections, highlight.js
// source highlighting and font icons.
func DefaultAttributes() []Attribute {
	return []Attribute{
		{Name: "toc"},
		{Name: "toclevels", Value: "3"},
		{Name: "numbered"},
		{Name: "source-highlighter", Value: "highlightjs"},
		{Name: "icons", Value: "font"},
	}
}

// String renders the attribute entry line.
func (a Attribute) String() string {
	if a.Value == "" {
		return ":" + a.Name + ":"
	}
	return ":" + a.Name + ": " + a.Value
}

// RenderHeader renders attribute entries followed by a blank line.
// With no attributes the header is empty.
func RenderHeader(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// InjectHeader prepends the attribute header to an AsciiDoc body.
func InjectHeader(body string, attrs []Attribute) string {
	return RenderHeader(attrs) + body
}
