// Package pipeline implements the Markdown-to-AsciiDoc rewrite.
//
// The rewrite is a single pass over the lines of a document driven by a
// small state machine with three exclusive phases:
//   - normal: header rule, then the ordered inline rules (bold-italic, bold,
//     italic, image, link, list), then blockquote and horizontal rule
//   - code: verbatim lines between matching fences (``` or ````)
//   - table: contiguous lines containing '|' wrapped in a |=== block
//
// Bold spans are parked between the private-use runes U+E000 and U+E001
// while italic runs. Those runes are removed from normal lines before the
// inline rules, so they do not survive conversion there. Code blocks and
// headers keep them.
//
// The document attribute header is injected last. Nothing in this package
// performs I/O; file discovery and writing live in cmd/md2adoc.
package pipeline
