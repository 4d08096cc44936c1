package pipeline

import (
	"regexp"
	"strings"
)

// Bold placeholders use Unicode Private Use Area characters.
// They keep converted bold spans out of reach of the italic rule and are
// turned into AsciiDoc "*" markers once every inline rule has run.
const (
	BoldStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	BoldEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// splitLines normalizes line endings and splits content into lines.
// Empty content yields a single empty line, so the output keeps its shape.
func splitLines(content string) []string {
	return strings.Split(normalizeLineEndings(content), "\n")
}

// stripPlaceholders drops placeholder runes already present in the input so
// they cannot be mistaken for bold markers.
var stripPlaceholders = strings.NewReplacer(BoldStartPlaceholder, "", BoldEndPlaceholder, "")

// convertBoldPlaceholders turns bold placeholders into AsciiDoc strong markers.
func convertBoldPlaceholders(line string) string {
	if !strings.ContainsAny(line, BoldStartPlaceholder+BoldEndPlaceholder) {
		return line
	}
	return strings.NewReplacer(
		BoldStartPlaceholder, "*",
		BoldEndPlaceholder, "*",
	).Replace(line)
}
