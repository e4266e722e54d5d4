package state

// Interface is what the app needs from persistent state: typed settings
// plus the saved queue. Manager is the SQLite implementation, Mock the
// in-memory one used by tests.
type Interface interface {
	Settings

	// SaveQueue writes st right away.
	SaveQueue(st QueueState) error
	// ScheduleQueueSave replaces any pending save with st and writes it
	// after a short quiet period.
	ScheduleQueueSave(st QueueState)
	// Flush writes a pending scheduled save, if any.
	Flush() error
	// GetQueue returns nil or an empty state when no queue was saved yet.
	GetQueue() (*QueueState, error)
	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
