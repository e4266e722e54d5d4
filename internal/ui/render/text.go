// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces. Tag metadata is not
// trusted to be printable.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if (r != '\t' && unicode.IsControl(r)) || r == '\u00a0' {
			return true
		}
	}
	return false
}

// Truncate shortens s to maxWidth cells with a single character ellipsis.
// Styled input keeps its escape sequences.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Cell sanitizes, truncates and pads plain text to exactly width cells.
func Cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(Sanitize(s), width, "…"), width)
}

// CellRight is Cell with the text aligned to the right edge.
func CellRight(s string, width int) string {
	return runewidth.FillLeft(runewidth.Truncate(Sanitize(s), width, "…"), width)
}

// Row places left and right content on one line of exactly width cells.
// Left is truncated when both do not fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	leftWidth := max(width-rightWidth-1, 0)
	left = Truncate(left, leftWidth)
	gap := max(width-lipgloss.Width(left)-rightWidth, 0)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

// FitLines pads or cuts lines to exactly height entries.
func FitLines(lines []string, width, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, EmptyLine(width))
	}
	return lines
}
