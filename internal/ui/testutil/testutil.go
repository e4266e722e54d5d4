// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MeasureWidth returns the visual width of a string, ignoring ANSI codes.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first stripped line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// SplitLines splits stripped output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Key builds the tea.KeyMsg bubbletea delivers for a key name such as
// "j", "enter", "shift+up" or "ctrl+@".
func Key(name string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":      tea.KeyEnter,
		"esc":        tea.KeyEscape,
		"tab":        tea.KeyTab,
		"backspace":  tea.KeyBackspace,
		"delete":     tea.KeyDelete,
		"up":         tea.KeyUp,
		"down":       tea.KeyDown,
		"left":       tea.KeyLeft,
		"right":      tea.KeyRight,
		"home":       tea.KeyHome,
		"end":        tea.KeyEnd,
		"pgup":       tea.KeyPgUp,
		"pgdown":     tea.KeyPgDown,
		"shift+up":   tea.KeyShiftUp,
		"shift+down": tea.KeyShiftDown,
		" ":          tea.KeySpace,
		"ctrl+@":     tea.KeyCtrlAt,
		"ctrl+c":     tea.KeyCtrlC,
		"ctrl+y":     tea.KeyCtrlY,
		"ctrl+z":     tea.KeyCtrlZ,
	}
	if kt, ok := special[name]; ok {
		if kt == tea.KeySpace {
			return tea.KeyMsg{Type: kt, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Modifier flags for mouse helpers.
type Modifier int

const (
	Ctrl Modifier = 1 << iota
	Shift
)

// Press builds a left button press at (x, y).
func Press(x, y int, mods ...Modifier) tea.MouseMsg {
	msg := tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	for _, m := range mods {
		msg.Ctrl = msg.Ctrl || m&Ctrl != 0
		msg.Shift = msg.Shift || m&Shift != 0
	}
	return msg
}

// Motion builds a pointer motion with the left button held.
func Motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

// Release builds a button release at (x, y).
func Release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// Wheel builds a wheel notch at (x, y), up or down.
func Wheel(x, y int, up bool) tea.MouseMsg {
	button := tea.MouseButtonWheelDown
	if up {
		button = tea.MouseButtonWheelUp
	}
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// Messages runs cmd and returns every message it produces, expanding
// batches. Commands that sleep (tea.Tick) block for their duration.
func Messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Messages(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
