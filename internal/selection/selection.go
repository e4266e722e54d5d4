// Package selection tracks which queue entries are selected and the drag
// state used when reordering them with the mouse.
package selection

import "github.com/llehouerou/quaver/internal/playlist"

// Model is the multi-select state of the queue view.
//
// The anchor is the entry a shift range starts from; rangeEnd is where it
// stops. mouseOverID is the last row the pointer passed over and serves as
// the drop target of a drag.
type Model struct {
	selected    []playlist.Track
	anchor      *playlist.Track
	rangeEnd    *playlist.Track
	mouseOverID string
	dragging    bool
}

// New creates an empty selection.
func New() Model {
	return Model{}
}

// Set replaces the selection with t and makes it the range anchor.
func (m *Model) Set(t playlist.Track) {
	m.selected = []playlist.Track{t}
	m.setAnchor(t)
	m.rangeEnd = nil
}

// Toggle adds t if it is not selected and removes it otherwise.
// t becomes the range anchor either way.
func (m *Model) Toggle(t playlist.Track) {
	if i := m.index(t.ID); i >= 0 {
		m.selected = append(m.selected[:i], m.selected[i+1:]...)
	} else {
		m.selected = append(m.selected, t)
	}
	m.setAnchor(t)
	m.rangeEnd = nil
}

// SetRange records t as the end of a shift range. Without an anchor, t
// becomes the anchor.
func (m *Model) SetRange(t playlist.Track) {
	if m.anchor == nil {
		m.setAnchor(t)
	}
	end := t
	m.rangeEnd = &end
}

// ToggleRange adds every entry between the anchor and the range end to the
// selection. The range is contiguous in projection, the sequence the user is
// looking at; entries not in projection never join. If either end is missing
// from projection only the range end is added.
func (m *Model) ToggleRange(projection []playlist.Track) {
	if m.rangeEnd == nil {
		return
	}
	start, end := -1, -1
	for i := range projection {
		if m.anchor != nil && projection[i].ID == m.anchor.ID {
			start = i
		}
		if projection[i].ID == m.rangeEnd.ID {
			end = i
		}
	}

	if start < 0 || end < 0 {
		m.add(*m.rangeEnd)
		return
	}
	if start > end {
		start, end = end, start
	}
	for _, t := range projection[start : end+1] {
		m.add(t)
	}
}

// Clear empties the selection and forgets the anchor.
func (m *Model) Clear() {
	m.selected = nil
	m.anchor = nil
	m.rangeEnd = nil
}

// Retain drops selected entries whose IDs are not in keep.
func (m *Model) Retain(keep map[string]bool) {
	kept := m.selected[:0]
	for _, t := range m.selected {
		if keep[t.ID] {
			kept = append(kept, t)
		}
	}
	m.selected = kept
	if m.anchor != nil && !keep[m.anchor.ID] {
		m.anchor = nil
	}
	if m.rangeEnd != nil && !keep[m.rangeEnd.ID] {
		m.rangeEnd = nil
	}
}

// SetDragging sets the drag flag.
func (m *Model) SetDragging(dragging bool) {
	m.dragging = dragging
}

// IsDragging reports whether a drag is in progress.
func (m Model) IsDragging() bool {
	return m.dragging
}

// SetMouseOver records the entry under the pointer.
func (m *Model) SetMouseOver(id string) {
	m.mouseOverID = id
}

// MouseOverID returns the entry last under the pointer.
func (m Model) MouseOverID() string {
	return m.mouseOverID
}

// Anchor returns the range anchor, if any.
func (m Model) Anchor() (playlist.Track, bool) {
	if m.anchor == nil {
		return playlist.Track{}, false
	}
	return *m.anchor, true
}

// Contains reports whether the entry with id is selected.
func (m Model) Contains(id string) bool {
	return m.index(id) >= 0
}

// Len returns the number of selected entries.
func (m Model) Len() int {
	return len(m.selected)
}

// Entries returns a copy of the selected entries in selection order.
func (m Model) Entries() []playlist.Track {
	result := make([]playlist.Track, len(m.selected))
	copy(result, m.selected)
	return result
}

// IDs returns the selected entry IDs as a set.
func (m Model) IDs() map[string]bool {
	result := make(map[string]bool, len(m.selected))
	for _, t := range m.selected {
		result[t.ID] = true
	}
	return result
}

// Clone returns a deep copy safe to hand to another goroutine.
func (m Model) Clone() Model {
	c := m
	c.selected = m.Entries()
	if m.anchor != nil {
		a := *m.anchor
		c.anchor = &a
	}
	if m.rangeEnd != nil {
		e := *m.rangeEnd
		c.rangeEnd = &e
	}
	return c
}

func (m *Model) add(t playlist.Track) {
	if m.index(t.ID) < 0 {
		m.selected = append(m.selected, t)
	}
}

func (m *Model) setAnchor(t playlist.Track) {
	a := t
	m.anchor = &a
}

func (m Model) index(id string) int {
	for i := range m.selected {
		if m.selected[i].ID == id {
			return i
		}
	}
	return -1
}
