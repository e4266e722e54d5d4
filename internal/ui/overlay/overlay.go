// Package overlay draws a placed popup over the screen below it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws top over base, line by line. On each line the span from the
// first to the last visible non-space cell of top replaces base; blank top
// lines leave base untouched. Both views are ANSI styled and width is the
// screen width.
func Compose(base, top string, width int) string {
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(lines) {
			break
		}
		start, end, ok := span(line)
		if !ok {
			continue
		}
		lines[i] = splice(lines[i], ansi.Cut(line, start, end), start, end, width)
	}
	return strings.Join(lines, "\n")
}

// span returns the visible column range of the non-space content of line.
func span(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	trimmed := strings.TrimRight(plain, " ")
	content := strings.TrimLeft(trimmed, " ")
	if content == "" {
		return 0, 0, false
	}
	start = len(trimmed) - len(content) // leading spaces are one byte each
	return start, start + ansi.StringWidth(content), true
}

// splice replaces columns [start, end) of line with piece.
func splice(line, piece string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	out := ansi.Cut(line, 0, start) + piece
	if end < width {
		out += ansi.Cut(line, end, width)
	}
	return out
}
