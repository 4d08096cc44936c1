// Package inspect analyzes Markdown sources with a real parser.
//
// The converter itself is a line rewriter and never builds an AST. This
// package parses the same source with goldmark to extract the document
// title and to report constructs the rewriter does not translate
// faithfully, so authors can fix them before publishing.
package inspect

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2adoc/internal/pipeline"
)

// Rule identifiers reported in findings.
const (
	RuleOrderedList       = "ordered-list"
	RuleNestedBlockquote  = "nested-blockquote"
	RuleHTMLBlock         = "html-block"
	RuleSetextHeading     = "setext-heading"
	RuleTableColumns      = "table-columns"
	RuleUnknownLanguage   = "unknown-language"
	RuleTildeFence        = "tilde-fence"
	RuleUnterminatedFence = "unterminated-fence"
)

// fixedColumns is the column count of the default table spec.
const fixedColumns = 3

// Finding is a construct that will not convert as the author expects.
type Finding struct {
	Line    int    `json:"line"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Options tunes which findings are reported.
type Options struct {
	// AutoColumns suppresses table column count findings.
	AutoColumns bool
}

// Report is the result of inspecting one document.
type Report struct {
	Title         string
	CodeLanguages []string
	Findings      []Finding
}

// newParser returns a goldmark instance with GitHub Flavored Markdown.
func newParser() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks, task lists
		),
	)
}

// Inspect parses source and reports its title, code languages and findings.
func Inspect(source []byte, opts Options) *Report {
	doc := newParser().Parser().Parse(text.NewReader(source))
	r := &Report{}
	seenLang := map[string]bool{}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if r.Title == "" && node.Level == 1 {
				r.Title = strings.TrimSpace(nodeText(node, source))
			}
			if isSetext(node, source) {
				r.add(source, node, RuleSetextHeading,
					"setext heading (underlined) is not converted; use '#' headers")
			}

		case *ast.List:
			if node.IsOrdered() {
				r.add(source, node, RuleOrderedList,
					"ordered list is kept as plain text; AsciiDoc uses '. item'")
			}

		case *ast.Blockquote:
			if _, ok := node.Parent().(*ast.Blockquote); ok {
				r.add(source, node, RuleNestedBlockquote,
					"nested blockquote is flattened into a single quote block")
			}

		case *ast.HTMLBlock:
			r.add(source, node, RuleHTMLBlock,
				"raw HTML block is copied verbatim into AsciiDoc")

		case *ast.FencedCodeBlock:
			lang := string(node.Language(source))
			if lang == "" {
				break
			}
			if !seenLang[lang] {
				seenLang[lang] = true
				r.CodeLanguages = append(r.CodeLanguages, lang)
			}
			if lexers.Get(lang) == nil {
				r.add(source, node, RuleUnknownLanguage,
					fmt.Sprintf("code language %q is not known to the syntax highlighter", lang))
			}

		case *east.Table:
			cols := len(node.Alignments)
			if !opts.AutoColumns && cols != fixedColumns {
				r.add(source, node, RuleTableColumns,
					fmt.Sprintf("table has %d columns but the column spec declares %d; enable auto columns", cols, fixedColumns))
			}
		}

		return ast.WalkContinue, nil
	})

	r.Findings = append(r.Findings, scanFences(source)...)
	sort.SliceStable(r.Findings, func(i, j int) bool {
		return r.Findings[i].Line < r.Findings[j].Line
	})

	return r
}

// Title returns the text of the first level-1 heading, or "".
func Title(source []byte) string {
	doc := newParser().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func (r *Report) add(source []byte, n ast.Node, rule, msg string) {
	r.Findings = append(r.Findings, Finding{
		Line:    lineOf(source, nodeOffset(n)),
		Rule:    rule,
		Message: msg,
	})
}

// scanFences reports fences the line rewriter handles differently than
// CommonMark: tilde fences and blocks left open at end of file.
func scanFences(source []byte) []Finding {
	var findings []Finding
	open := pipeline.FenceNone
	openLine := 0

	for i, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSuffix(line, "\r")
		kind, _ := pipeline.DetectFence(line)

		if open != pipeline.FenceNone {
			if kind == open {
				open = pipeline.FenceNone
			}
			continue
		}

		switch {
		case kind != pipeline.FenceNone:
			open = kind
			openLine = i + 1
		case strings.HasPrefix(strings.TrimSpace(line), "~~~"):
			findings = append(findings, Finding{
				Line:    i + 1,
				Rule:    RuleTildeFence,
				Message: "tilde fence is not recognized; use backticks",
			})
		}
	}

	if open != pipeline.FenceNone {
		findings = append(findings, Finding{
			Line:    openLine,
			Rule:    RuleUnterminatedFence,
			Message: "code block opened with " + open.String() + " is never closed",
		})
	}

	return findings
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(nodeText(c, source))
		}
	}
	return buf.String()
}

// nodeOffset returns the byte offset of the first source segment under n, or -1.
func nodeOffset(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := nodeOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

// isSetext reports whether a heading was written in underline style.
// An ATX heading's text is preceded by its run of '#', whatever container
// (list item, blockquote) it sits in.
func isSetext(h *ast.Heading, source []byte) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	before := bytes.TrimRight(source[:h.Lines().At(0).Start], " \t")
	return !bytes.HasSuffix(before, []byte("#"))
}

// lineOf converts a byte offset to a 1-based line number.
func lineOf(source []byte, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
