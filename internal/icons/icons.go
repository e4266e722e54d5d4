package icons

import "github.com/llehouerou/quaver/internal/playback"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing   string
	Paused    string
	Art       string // album art cached for the row
	Shuffle   string
	RepeatAll string
	RepeatOne string
	CheckOn   string
	CheckOff  string
	Drop      string // insertion marker while dragging
}

var (
	nerdIcons = Icons{
		Playing:   "", // nf-fa-play
		Paused:    "", // nf-fa-pause
		Art:       "󰀥", // nf-md-album
		Shuffle:   "󰒟", // nf-md-shuffle
		RepeatAll: "󰑖", // nf-md-repeat
		RepeatOne: "󰑘", // nf-md-repeat_once
		CheckOn:   "󰄲", // nf-md-checkbox_marked
		CheckOff:  "󰄱", // nf-md-checkbox_blank_outline
		Drop:      "▶",
	}

	unicodeIcons = Icons{
		Playing:   "▶",
		Paused:    "⏸",
		Art:       "💿",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		CheckOn:   "☑",
		CheckOff:  "☐",
		Drop:      "▶",
	}

	noneIcons = Icons{
		Playing:   ">",
		Paused:    "=",
		Art:       "*",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		CheckOn:   "[x]",
		CheckOff:  "[ ]",
		Drop:      ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Status returns the marker for the playing entry, or "" when stopped.
func Status(s playback.Status) string {
	switch s {
	case playback.StatusPlaying:
		return current.Playing
	case playback.StatusPaused:
		return current.Paused
	default:
		return ""
	}
}

// Art returns the cached album art marker.
func Art() string {
	return current.Art
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Checkbox returns the checkbox glyph for the given state.
func Checkbox(checked bool) string {
	if checked {
		return current.CheckOn
	}
	return current.CheckOff
}

// Drop returns the drag insertion marker.
func Drop() string {
	return current.Drop
}
