package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// displayLine makes control bytes visible so a format with e.g. '\v' does
// not break the terminal layout.
func displayLine(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			sb.WriteByte('\t')
		case r < 0x20 || r == 0x7f:
			sb.WriteRune('·')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// caretPadding returns the blank prefix that puts a caret under column
// offset of line, keeping tabs so the terminal expands them identically.
func caretPadding(line string, offset int) string {
	if offset > len(line) {
		offset = len(line)
	}
	var sb strings.Builder
	for _, r := range displayLine(line[:offset]) {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

// underline returns "^~~~" spanning the display width of text, at least one caret.
func underline(text string) string {
	w := runewidth.StringWidth(displayLine(text))
	if w <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", w-1)
}
