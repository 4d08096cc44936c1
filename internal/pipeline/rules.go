package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// ATX header: one or more '#' followed by a space
	headerPattern = regexp.MustCompile(`^(#+) (.*)$`)

	// Bold italic ***text***, no asterisk inside
	boldItalicPattern = regexp.MustCompile(`\*\*\*([^*]+?)\*\*\*`)

	// Bold **text**, shortest span
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// Image ![alt](url), alt may be empty
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	// Link [label](url)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Unordered list item, keeps indentation
	listPattern = regexp.MustCompile(`^(\s*)- (.+)$`)
)

// Block markers emitted by line rules.
const (
	quoteStyle     = "[quote]"
	quoteDelimiter = "____"
	thematicBreak  = "'''"
)

// inlineRule rewrites one line of text. Rules run in slice order and each
// sees the output of the previous one.
type inlineRule struct {
	name  string
	apply func(line string) string
}

// inlineRules is the ordered rewrite pipeline for non-header lines.
// Order is load-bearing: bold must hide its markers before italic runs,
// and images must be consumed before the link pattern can match "[alt](url)".
var inlineRules = []inlineRule{
	{name: "bold-italic", apply: convertBoldItalic},
	{name: "bold", apply: convertBold},
	{name: "italic", apply: convertItalic},
	{name: "strong", apply: convertBoldPlaceholders},
	{name: "image", apply: convertImages},
	{name: "link", apply: convertLinks},
	{name: "list", apply: convertListMarker},
}

// ruleNames returns the inline rule names in evaluation order.
func ruleNames() []string {
	names := make([]string, len(inlineRules))
	for i, r := range inlineRules {
		names[i] = r.name
	}
	return names
}

// rewriteLine applies the header rule or the inline pipeline followed by the
// block rules (blockquote, horizontal rule) to a line outside code blocks.
// A blockquote expands into four lines.
func rewriteLine(line string) []string {
	if header, ok := convertHeader(line); ok {
		return []string{header}
	}

	line = stripPlaceholders.Replace(line)

	for _, r := range inlineRules {
		line = r.apply(line)
	}

	if quoted, ok := strings.CutPrefix(line, "> "); ok {
		return []string{quoteStyle, quoteDelimiter, quoted, quoteDelimiter}
	}

	if strings.TrimSpace(line) == "---" {
		return []string{thematicBreak}
	}

	return []string{line}
}

// convertHeader turns "## Title" into "== Title".
func convertHeader(line string) (string, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.Repeat("=", len(m[1])) + " " + strings.TrimSpace(m[2]), true
}

// convertBoldItalic transforms ***text*** to *_text_*.
func convertBoldItalic(line string) string {
	return boldItalicPattern.ReplaceAllString(line, BoldStartPlaceholder+"_${1}_"+BoldEndPlaceholder)
}

// convertBold transforms **text** to placeholder-wrapped text.
// The placeholders become "*" in convertBoldPlaceholders.
func convertBold(line string) string {
	return boldPattern.ReplaceAllString(line, BoldStartPlaceholder+"${1}"+BoldEndPlaceholder)
}

// convertItalic transforms *text* to _text_ when neither asterisk touches
// another asterisk and the span holds no asterisk.
func convertItalic(line string) string {
	if strings.IndexByte(line, '*') < 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		if line[i] != '*' || (i > 0 && line[i-1] == '*') {
			b.WriteByte(line[i])
			i++
			continue
		}

		end := strings.IndexByte(line[i+1:], '*')
		if end <= 0 {
			b.WriteByte(line[i])
			i++
			continue
		}
		end += i + 1

		if end+1 < len(line) && line[end+1] == '*' {
			b.WriteByte(line[i])
			i++
			continue
		}

		b.WriteByte('_')
		b.WriteString(line[i+1 : end])
		b.WriteByte('_')
		i = end + 1
	}

	return b.String()
}

// convertImages transforms ![alt](url) to image::url[alt].
func convertImages(line string) string {
	return imagePattern.ReplaceAllString(line, "image::${2}[${1}]")
}

// convertLinks transforms [label](url) to link:url[label].
func convertLinks(line string) string {
	return linkPattern.ReplaceAllString(line, "link:${2}[${1}]")
}

// convertListMarker transforms "- item" to "* item", keeping indentation.
func convertListMarker(line string) string {
	return listPattern.ReplaceAllString(line, "${1}* ${2}")
}
