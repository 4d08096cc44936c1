package md2adoc

import "github.com/alnah/go-md2adoc/internal/inspect"

// Finding is a Markdown construct the converter does not translate faithfully.
type Finding = inspect.Finding

// LintOptions tunes which findings Lint reports.
type LintOptions struct {
	// AutoColumns matches WithAutoColumns: tables of any width are accepted.
	AutoColumns bool
}

// LintResult is the outcome of linting one document.
type LintResult struct {
	Title         string    // First level-1 header, empty if none
	CodeLanguages []string  // Fenced code languages in order of first use
	Findings      []Finding // Sorted by line
}

// Lint parses markdown with a CommonMark parser and reports constructs that
// the line rewrite handles differently: ordered lists, nested blockquotes,
// raw HTML blocks, setext headings, tables whose width does not match the
// column spec, unknown code languages, tilde fences and unterminated fences.
func Lint(markdown string, opts LintOptions) *LintResult {
	report := inspect.Inspect([]byte(markdown), inspect.Options{AutoColumns: opts.AutoColumns})
	return &LintResult{
		Title:         report.Title,
		CodeLanguages: report.CodeLanguages,
		Findings:      report.Findings,
	}
}

// Clean reports whether the document has no findings.
func (r *LintResult) Clean() bool {
	return len(r.Findings) == 0
}
