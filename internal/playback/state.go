package playback

// Status represents the playback status.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "Stopped"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusPaused
}

// Player identifies one of the two crossfading players.
type Player int

const (
	Primary   Player = 1
	Secondary Player = 2
)

// String returns the player name.
func (p Player) String() string {
	switch p {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Valid reports whether p names one of the two players.
func (p Player) Valid() bool {
	return p == Primary || p == Secondary
}
