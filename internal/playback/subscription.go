package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StatusChanged    <-chan StatusChange
	QueueChanged     <-chan QueueChange
	SelectionChanged <-chan SelectionChange
	SettingChanged   <-chan SettingChange
	IndexChanged     <-chan IndexChange
	Done             <-chan struct{}

	// Internal write channels
	statusCh    chan StatusChange
	queueCh     chan QueueChange
	selectionCh chan SelectionChange
	settingCh   chan SettingChange
	indexCh     chan IndexChange
	doneCh      chan struct{}
}

// NewSubscription creates a new subscription with buffered channels.
func NewSubscription() *Subscription {
	s := &Subscription{
		statusCh:    make(chan StatusChange, eventBufferSize),
		queueCh:     make(chan QueueChange, eventBufferSize),
		selectionCh: make(chan SelectionChange, eventBufferSize),
		settingCh:   make(chan SettingChange, eventBufferSize),
		indexCh:     make(chan IndexChange, eventBufferSize),
		doneCh:      make(chan struct{}),
	}
	s.StatusChanged = s.statusCh
	s.QueueChanged = s.queueCh
	s.SelectionChanged = s.selectionCh
	s.SettingChanged = s.settingCh
	s.IndexChanged = s.indexCh
	s.Done = s.doneCh
	return s
}

// Close signals subscribers to stop by closing Done.
func (s *Subscription) Close() {
	close(s.doneCh)
}

// SendStatus sends a status change event (non-blocking).
func (s *Subscription) SendStatus(e StatusChange) {
	select {
	case s.statusCh <- e:
	default:
		// Drop if buffer full
	}
}

// SendQueue sends a queue change event (non-blocking).
func (s *Subscription) SendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

// SendSelection sends a selection change event (non-blocking).
func (s *Subscription) SendSelection(e SelectionChange) {
	select {
	case s.selectionCh <- e:
	default:
	}
}

// SendSetting sends a setting change event (non-blocking).
func (s *Subscription) SendSetting(e SettingChange) {
	select {
	case s.settingCh <- e:
	default:
	}
}

// SendIndex sends an index change event (non-blocking).
func (s *Subscription) SendIndex(e IndexChange) {
	select {
	case s.indexCh <- e:
	default:
	}
}
