// Package sanitize strips lightweight markup from model replies. The widget
// renders plain text, so markdown-style tokens coming back from the model are
// removed while emoji and all other Unicode content pass through unchanged.
package sanitize

import (
	"regexp"
	"strings"
)

// rule is a single text transformation. Rules are applied in order; later
// rules operate on the output of earlier ones.
type rule struct {
	name string
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	{"bold", regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
	{"italic", regexp.MustCompile(`\*(.+?)\*`), "$1"},
	{"underscore italic", regexp.MustCompile(`_(.+?)_`), "$1"},
	{"inline code", regexp.MustCompile("`([^`]+)`"), "$1"},
	{"strikethrough", regexp.MustCompile(`~~(.+?)~~`), "$1"},
	{"heading", regexp.MustCompile(`(?m)^#+\s+`), ""},
	{"block quote", regexp.MustCompile(`(?m)^>\s+`), ""},
	{"bullet", regexp.MustCompile(`(?m)^[-*•]\s+`), ""},
	{"ordered list", regexp.MustCompile(`(?m)^\d+\.\s+`), ""},
	{"box rule", regexp.MustCompile(`[─━═]{3,}`), ""},
	// Dash separators count only when they make up a whole line; inline
	// dashes stay untouched.
	{"dash rule", regexp.MustCompile(`(?m)^[ \t]*-{2,}[ \t]*$`), ""},
	{"blank lines", regexp.MustCompile(`\n{3,}`), "\n\n"},
	{"spaces", regexp.MustCompile(`[ \t]+`), " "},
}

// Clean strips markup tokens from text and normalizes whitespace. It is pure
// and deterministic; empty input yields empty output.
func Clean(text string) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return strings.TrimSpace(text)
}
