package md2adoc

import (
	"testing"

	"github.com/alnah/go-md2adoc/internal/inspect"
)

func TestLint(t *testing.T) {
	t.Parallel()

	source := "# Lab 3\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"

	result := Lint(source, LintOptions{})
	if result.Title != "Lab 3" {
		t.Errorf("Title = %q, want %q", result.Title, "Lab 3")
	}
	if result.Clean() {
		t.Fatal("Clean() = true, want a table-columns finding")
	}
	if got := result.Findings[0]; got.Rule != inspect.RuleTableColumns || got.Line != 3 {
		t.Errorf("finding = %+v, want table-columns on line 3", got)
	}

	if !Lint(source, LintOptions{AutoColumns: true}).Clean() {
		t.Error("Clean() = false with auto columns, want true")
	}
}
