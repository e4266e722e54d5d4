package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "hello", "hello"},
		{"control chars", "a\x00b\x1bc", "abc"},
		{"keeps tab", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"unicode", "Björk – Jóga", "Björk – Jóga"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncate_KeepsStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	out := Truncate(styled, 6)
	assert.Equal(t, "hello…", ansi.Strip(out))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "abc  ", Cell("abc", 5))
	assert.Equal(t, "abcd…", Cell("abcdefgh", 5))
	assert.Equal(t, "  abc", CellRight("abc", 5))
	assert.Equal(t, 6, lipgloss.Width(Cell("日本語の曲", 6)))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 3))
}

func TestRow(t *testing.T) {
	row := Row("left", "right", 12)
	assert.Equal(t, "left   right", row)
	assert.Equal(t, 12, lipgloss.Width(row))

	narrow := Row("a long left side", "R", 8)
	assert.Equal(t, 8, lipgloss.Width(narrow))
	assert.Equal(t, "a lon… R", narrow)
}

func TestFitLines(t *testing.T) {
	lines := FitLines([]string{"a"}, 3, 3)
	assert.Equal(t, []string{"a", "   ", "   "}, lines)
	assert.Equal(t, []string{"a", "b"}, FitLines([]string{"a", "b", "c"}, 1, 2))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
	assert.Equal(t, "  ", EmptyLine(2))
}
