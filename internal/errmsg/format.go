// Package errmsg turns failures into the one-line messages shown in the
// player bar.
package errmsg

import "fmt"

// Op names what the user was doing when something failed. It reads as the
// object of "Failed to ...".
type Op string

const (
	OpQueueLoad     Op = "load queue"
	OpQueueEdit     Op = "update queue"
	OpFileLoad      Op = "load file"
	OpPlaybackStart Op = "start playback"
	OpSettingSave   Op = "save setting"
	OpArtCache      Op = "cache album art"
)

// Format returns "" for a nil error.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
