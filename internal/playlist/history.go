package playlist

import "slices"

// QueueHistory keeps snapshots of the base queue order so reorders,
// removals and clears can be undone. The newest snapshot is the present
// order; maxSize bounds past and present together.
type QueueHistory struct {
	past    [][]Track
	present []Track
	future  [][]Track // most recently undone last
	started bool
	maxSize int
}

// NewQueueHistory creates a new history with the given maximum size.
func NewQueueHistory(maxSize int) *QueueHistory {
	return &QueueHistory{maxSize: max(maxSize, 1)}
}

// Push records tracks as the present order. Anything undone is forgotten.
func (h *QueueHistory) Push(tracks []Track) {
	if h.started {
		h.past = append(h.past, h.present)
	}
	h.present = slices.Clone(tracks)
	h.started = true
	h.future = nil

	if excess := len(h.past) - (h.maxSize - 1); excess > 0 {
		h.past = slices.Delete(h.past, 0, excess)
	}
}

// Undo steps back one snapshot and returns a copy of it.
func (h *QueueHistory) Undo() ([]Track, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.present)
	h.present = h.past[last]
	h.past = h.past[:last]
	return slices.Clone(h.present), true
}

// Redo re-applies the last undone snapshot and returns a copy of it.
func (h *QueueHistory) Redo() ([]Track, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	last := len(h.future) - 1
	h.past = append(h.past, h.present)
	h.present = h.future[last]
	h.future = h.future[:last]
	return slices.Clone(h.present), true
}

// CanUndo reports whether an older snapshot exists.
func (h *QueueHistory) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether an undone snapshot can be re-applied.
func (h *QueueHistory) CanRedo() bool {
	return len(h.future) > 0
}

// Reset forgets every snapshot and starts over from tracks.
func (h *QueueHistory) Reset(tracks []Track) {
	h.past = nil
	h.future = nil
	h.started = false
	h.Push(tracks)
}

// Len returns the number of stored snapshots.
func (h *QueueHistory) Len() int {
	n := len(h.past) + len(h.future)
	if h.started {
		n++
	}
	return n
}
