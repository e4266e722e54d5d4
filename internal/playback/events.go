package playback

// StatusChange is emitted when the playback status changes.
type StatusChange struct {
	Previous Status
	Current  Status
}

// QueueChange is emitted when the queue contents or order change.
// IDs lists the base sequence; Index is the playing base index.
type QueueChange struct {
	IDs     []string
	Index   int
	Shuffle bool
}

// SelectionChange is emitted when the set of selected entries changes.
type SelectionChange struct {
	Count int
}

// SettingChange is emitted when a session playback setting changes.
type SettingChange struct {
	Key   string
	Value any
}

// IndexChange is emitted when a player is pointed at a different entry.
type IndexChange struct {
	Player Player
	Index  int
}
