package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Fence openers capture the language tag that immediately follows the backticks.
var (
	tripleFenceLang    = regexp.MustCompile("^```(\\w+)")
	quadrupleFenceLang = regexp.MustCompile("^````(\\w+)")
)

// AsciiDoc block markers.
const (
	sourceStyle     = "[source]"
	listingBlock    = "----"
	tableDelimiter  = "|==="
	defaultColsSpec = "1,1,1"
)

// phase is the state of the line walker. Phases never overlap.
type phase int

const (
	phaseNormal phase = iota
	phaseCode
	phaseTable
)

// FenceKind identifies the delimiter that opened a code block.
// A block only closes on a fence of the same kind.
type FenceKind int

const (
	FenceNone FenceKind = iota
	FenceTriple
	FenceQuadruple
)

// String returns the fence delimiter for the kind.
func (k FenceKind) String() string {
	switch k {
	case FenceTriple:
		return "```"
	case FenceQuadruple:
		return "````"
	default:
		return "none"
	}
}

// DetectFence reports the fence kind a line starts with and the language
// tag that immediately follows it, if any.
// Five or more backticks are not a fence.
func DetectFence(line string) (FenceKind, string) {
	switch {
	case strings.HasPrefix(line, "````"):
		if strings.HasPrefix(line, "`````") {
			return FenceNone, ""
		}
		return FenceQuadruple, submatch(quadrupleFenceLang, line)
	case strings.HasPrefix(line, "```"):
		return FenceTriple, submatch(tripleFenceLang, line)
	default:
		return FenceNone, ""
	}
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// TransformOptions tunes the line transformer.
type TransformOptions struct {
	// AutoColumns sizes table column specs from the header row instead of
	// the fixed three-column spec.
	AutoColumns bool
}

// Transformer is the contract for Markdown to AsciiDoc body conversion.
type Transformer interface {
	Transform(ctx context.Context, content string) string
}

// LineTransformer rewrites Markdown line by line.
type LineTransformer struct {
	Options TransformOptions
}

// Transform converts Markdown content to an AsciiDoc body (no attribute header).
// Returns the content unchanged if ctx is already done.
func (t *LineTransformer) Transform(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return Transform(content, t.Options)
}

// Transform converts Markdown content to an AsciiDoc body in a single pass.
// It never fails: any string input yields a result.
func Transform(content string, opts TransformOptions) string {
	lines := splitLines(content)
	w := &walker{opts: opts, out: make([]string, 0, len(lines)+8)}

	for _, line := range lines {
		w.step(line)
	}
	w.finish()

	return strings.Join(w.out, "\n")
}

// walker carries conversion state across lines of one document.
type walker struct {
	opts  TransformOptions
	phase phase
	fence FenceKind
	lang  string
	out   []string
}

// step consumes one input line.
func (w *walker) step(line string) {
	kind, lang := DetectFence(line)

	if w.phase == phaseCode {
		if kind == w.fence {
			w.out = append(w.out, listingBlock)
			w.phase = phaseNormal
			w.fence = FenceNone
			w.lang = ""
			return
		}
		w.out = append(w.out, line)
		return
	}

	if kind != FenceNone {
		opener := sourceStyle
		if lang != "" {
			opener = "[source," + lang + "]"
		}
		// The opener carries no '|', so an open table closes before it.
		w.emit(opener)
		w.out = append(w.out, listingBlock)
		w.phase = phaseCode
		w.fence = kind
		w.lang = lang
		return
	}

	for _, l := range rewriteLine(line) {
		w.emit(l)
	}
}

// emit routes a rewritten line through table detection.
func (w *walker) emit(line string) {
	hasPipe := strings.Contains(line, "|")

	if w.phase == phaseTable {
		switch {
		case hasPipe && strings.Contains(line, "---"):
			// header/body separator row
		case hasPipe:
			w.out = append(w.out, line)
		default:
			w.out = append(w.out, tableDelimiter, line)
			w.phase = phaseNormal
		}
		return
	}

	if hasPipe && !strings.HasPrefix(strings.TrimSpace(line), "image::") {
		w.out = append(w.out, tableHeader(w.colsSpec(line)), tableDelimiter, line)
		w.phase = phaseTable
		return
	}

	w.out = append(w.out, line)
}

// finish closes any block left open at end of document.
func (w *walker) finish() {
	switch w.phase {
	case phaseTable:
		w.out = append(w.out, tableDelimiter)
	case phaseCode:
		w.out = append(w.out, listingBlock)
	}
	w.phase = phaseNormal
}

func (w *walker) colsSpec(headerRow string) string {
	if !w.opts.AutoColumns {
		return defaultColsSpec
	}
	n := CountCells(headerRow)
	if n < 1 {
		n = 1
	}
	return strings.TrimSuffix(strings.Repeat("1,", n), ",")
}

func tableHeader(cols string) string {
	return `[cols="` + cols + `", options="header"]`
}

// CountCells returns the number of cells in a pipe table row.
// Leading and trailing pipes are optional.
func CountCells(row string) int {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	if row == "" {
		return 0
	}
	return strings.Count(row, "|") + 1
}
