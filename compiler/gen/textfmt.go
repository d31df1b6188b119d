package gen

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// validatorBaseline is the fixed indent validator descriptions start with
// on their continuation lines.
const validatorBaseline = 4

// Wrap reflows free-form text into indented lines, applying the same
// indent to the first and every continuation line. The wrap target,
// indent included, is width minus the indent depth, so content occupies
// at most width-2*indent columns. Runs of whitespace (including
// newlines) collapse to single spaces before wrapping. Empty input
// yields the empty string.
func Wrap(text string, width, indent int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	cols := width - 2*indent
	if cols < 1 {
		cols = 1
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(wordwrap.WrapString(text, uint(cols)), "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Reindent re-indents a multi-line validator description: the first line
// loses all leading whitespace so callers can splice it inline, and every
// subsequent line has the fixed validator baseline stripped and indent
// spaces applied in its place.
func Reindent(text string, indent int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	pad := strings.Repeat(" ", indent)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		for cut := 0; cut < validatorBaseline && strings.HasPrefix(line, " "); cut++ {
			line = line[1:]
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
