package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestConvertHeader(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		input := strings.Repeat("#", n) + " Section title"
		want := strings.Repeat("=", n) + " Section title"

		got, ok := convertHeader(input)
		if !ok {
			t.Fatalf("convertHeader(%q) did not match", input)
		}
		if got != want {
			t.Errorf("convertHeader(%q) = %q, want %q", input, got, want)
		}
	}

	tests := []struct {
		name    string
		input   string
		want    string
		matched bool
	}{
		{name: "trims header text", input: "##   Spaced out   ", want: "== Spaced out", matched: true},
		{name: "empty header text", input: "# ", want: "= ", matched: true},
		{name: "no space after hashes", input: "#hashtag", matched: false},
		{name: "hash not at start", input: " # indented", matched: false},
		{name: "plain text", input: "text", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := convertHeader(tt.input)
			if ok != tt.matched {
				t.Fatalf("convertHeader(%q) matched = %v, want %v", tt.input, ok, tt.matched)
			}
			if ok && got != tt.want {
				t.Errorf("convertHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertItalic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "standalone", input: "*em*", expected: "_em_"},
		{name: "two spans", input: "*a* and *b*", expected: "_a_ and _b_"},
		{name: "inside sentence", input: "an *important* note", expected: "an _important_ note"},
		{name: "unclosed", input: "a * b", expected: "a * b"},
		{name: "adjacent asterisks", input: "*a**b*", expected: "*a**b*"},
		{name: "double asterisks untouched", input: "**x**", expected: "**x**"},
		{name: "no asterisk", input: "plain", expected: "plain"},
		{name: "empty", input: "", expected: ""},
		{name: "multibyte content", input: "*café*", expected: "_café_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertItalic(tt.input)
			if got != tt.expected {
				t.Errorf("convertItalic(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRewriteLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "bold", input: "**bold**", expected: []string{"*bold*"}},
		{name: "bold then italic", input: "Some **bold** and *em* text.", expected: []string{"Some *bold* and _em_ text."}},
		{name: "italic inside bold line", input: "**a** *b* **c**", expected: []string{"*a* _b_ *c*"}},
		{name: "bold italic", input: "***x***", expected: []string{"*_x_*"}},
		{name: "bold italic mid sentence", input: "Use ***very*** carefully", expected: []string{"Use *_very_* carefully"}},
		{name: "bold italic beside bold", input: "***a*** and **b**", expected: []string{"*_a_* and *b*"}},
		{name: "literal placeholder runes dropped", input: "\ue000literal\ue001", expected: []string{"literal"}},
		{name: "literal placeholder inside bold", input: "**a\ue001b**", expected: []string{"*ab*"}},
		{name: "link", input: "[text](http://x)", expected: []string{"link:http://x[text]"}},
		{name: "image", input: "![alt](http://x)", expected: []string{"image::http://x[alt]"}},
		{name: "image with empty alt", input: "![](diagram.png)", expected: []string{"image::diagram.png[]"}},
		{name: "image and link on one line", input: "See ![a](i.png) and [b](u)", expected: []string{"See image::i.png[a] and link:u[b]"}},
		{name: "link inside bold", input: "**[docs](https://d)**", expected: []string{"*link:https://d[docs]*"}},
		{name: "list item", input: "- item", expected: []string{"* item"}},
		{name: "indented list item", input: "    - nested", expected: []string{"    * nested"}},
		{name: "dash without space", input: "-item", expected: []string{"-item"}},
		{name: "blockquote", input: "> quoted", expected: []string{"[quote]", "____", "quoted", "____"}},
		{name: "blockquote with emphasis", input: "> **note** here", expected: []string{"[quote]", "____", "*note* here", "____"}},
		{name: "blockquote without space", input: ">quoted", expected: []string{">quoted"}},
		{name: "horizontal rule", input: "---", expected: []string{"'''"}},
		{name: "horizontal rule with spaces", input: "  ---  ", expected: []string{"'''"}},
		{name: "four dashes", input: "----", expected: []string{"----"}},
		{name: "header skips inline rules", input: "# **Bold** title", expected: []string{"= **Bold** title"}},
		{name: "plain text", input: "nothing to do", expected: []string{"nothing to do"}},
		{name: "empty", input: "", expected: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewriteLine(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("rewriteLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRuleNames(t *testing.T) {
	t.Parallel()

	want := []string{"bold-italic", "bold", "italic", "strong", "image", "link", "list"}
	if got := ruleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ruleNames() = %v, want %v", got, want)
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "LF unchanged", input: "a\nb", expected: "a\nb"},
		{name: "CRLF to LF", input: "a\r\nb", expected: "a\nb"},
		{name: "CR to LF", input: "a\rb", expected: "a\nb"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeLineEndings(tt.input); got != tt.expected {
				t.Errorf("normalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}
