// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// ScrollLeadRows is how many rows stay visible above the playing entry
	// when the list follows playback.
	ScrollLeadRows = 2

	// FooterHeight is the player bar: top border plus one status line.
	FooterHeight = 2
)

// Timing constants for deferred UI work.
const (
	// ClickDebounce is how long a single click waits for a second click.
	ClickDebounce = 100 * time.Millisecond

	// ResetPlayerDelay separates clearing the queue from resetting the player.
	ResetPlayerDelay = 200 * time.Millisecond

	// ScrollDelay lets the list settle before following the playing entry.
	ScrollDelay = 100 * time.Millisecond
)
