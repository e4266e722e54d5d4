package playlist

import (
	"math/rand/v2"
	"slices"
)

// RepeatMode defines what happens when the end of the play order is reached.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// PlayingQueue wraps a Playlist with playback state.
//
// The base playlist is the canonical insertion order. The shuffled and sorted
// sequences are alternative orderings of the same entries; currentIndex always
// refers into the base playlist.
type PlayingQueue struct {
	playlist     *Playlist
	shuffled     []Track
	sorted       []Track
	sortColumn   SortColumn
	sortOrder    SortOrder
	currentIndex int // -1 if nothing playing
	shuffle      bool
	repeatMode   RepeatMode
	rng          *rand.Rand
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return NewQueueWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint:gosec // shuffle order is not security sensitive
}

// NewQueueWithRand creates an empty queue that shuffles with r.
func NewQueueWithRand(r *rand.Rand) *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
		rng:          r,
	}
}

// Current returns the currently playing track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the base index of the currently playing track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// JumpTo sets the current index to the specified base position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Stop forgets the playing entry; the queue keeps its tracks.
func (q *PlayingQueue) Stop() {
	q.currentIndex = -1
}

// IndexOf returns the base index of the entry with the given ID, or -1.
func (q *PlayingQueue) IndexOf(id string) int {
	return q.playlist.IndexOf(id)
}

// Add appends tracks to the queue without changing playback.
func (q *PlayingQueue) Add(tracks ...Track) {
	q.playlist.Add(tracks...)
	if q.shuffle {
		q.shuffled = append(q.shuffled, tracks...)
	}
	q.resort()
}

// Replace clears the queue, adds tracks, and sets index to 0.
// Returns the first track to play.
func (q *PlayingQueue) Replace(tracks ...Track) *Track {
	q.playlist.Clear()
	q.currentIndex = -1
	q.shuffled = nil
	if len(tracks) == 0 {
		q.sorted = nil
		return nil
	}
	q.playlist.Add(tracks...)
	q.currentIndex = 0
	if q.shuffle {
		q.reshuffle()
	}
	q.resort()
	return q.Current()
}

// Restore replaces the base sequence with tracks and keeps the playing entry
// playing if it is still present. Used by undo/redo.
func (q *PlayingQueue) Restore(tracks []Track) {
	var currentID string
	if cur := q.Current(); cur != nil {
		currentID = cur.ID
	}
	q.playlist.Set(tracks)
	q.currentIndex = q.playlist.IndexOf(currentID)

	if q.shuffle && len(q.shuffled) == 0 {
		q.reshuffle()
	} else if q.shuffle {
		present := make(map[string]bool, len(tracks))
		for _, t := range tracks {
			present[t.ID] = true
		}
		kept := make([]Track, 0, len(tracks))
		seen := make(map[string]bool, len(tracks))
		for _, t := range q.shuffled {
			if present[t.ID] {
				kept = append(kept, t)
				seen[t.ID] = true
			}
		}
		for _, t := range tracks {
			if !seen[t.ID] {
				kept = append(kept, t)
			}
		}
		q.shuffled = kept
	}
	q.resort()
}

// RemoveIDs removes every entry whose ID is in ids and returns how many were
// removed. When the playing entry is removed the current index stays at the
// same position (now pointing at the following entry), clamped to the end.
func (q *PlayingQueue) RemoveIDs(ids map[string]bool) int {
	tracks := q.playlist.Tracks()
	kept := make([]Track, 0, len(tracks))
	removedBefore := 0
	currentRemoved := false
	for i, t := range tracks {
		if !ids[t.ID] {
			kept = append(kept, t)
			continue
		}
		if i < q.currentIndex {
			removedBefore++
		}
		if i == q.currentIndex {
			currentRemoved = true
		}
	}
	removed := len(tracks) - len(kept)
	if removed == 0 {
		return 0
	}

	q.playlist.Set(kept)
	if q.currentIndex >= 0 {
		q.currentIndex -= removedBefore
		if currentRemoved && q.currentIndex >= len(kept) {
			q.currentIndex = len(kept) - 1
		}
	}
	q.shuffled = slices.DeleteFunc(q.shuffled, func(t Track) bool { return ids[t.ID] })
	q.resort()
	return removed
}

// Clear removes all tracks and resets playback.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.shuffled = nil
	q.sorted = nil
	q.currentIndex = -1
}

// Tracks returns the base sequence.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// ShuffledTracks returns a copy of the shuffled sequence (empty when shuffle is off).
func (q *PlayingQueue) ShuffledTracks() []Track {
	return slices.Clone(q.shuffled)
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// Shuffle reports whether shuffle mode is on.
func (q *PlayingQueue) Shuffle() bool {
	return q.shuffle
}

// SetShuffle turns shuffle mode on or off. Turning it on builds a fresh
// shuffled sequence.
func (q *PlayingQueue) SetShuffle(enabled bool) {
	q.shuffle = enabled
	if enabled {
		q.reshuffle()
		return
	}
	q.shuffled = nil
}

// ToggleShuffle flips shuffle mode and returns the new state.
func (q *PlayingQueue) ToggleShuffle() bool {
	q.SetShuffle(!q.shuffle)
	return q.shuffle
}

// ShuffleInPlace re-randomizes the shuffled sequence. No-op when shuffle is off.
func (q *PlayingQueue) ShuffleInPlace() {
	if !q.shuffle {
		return
	}
	q.reshuffle()
}

// reshuffle builds the shuffled sequence: the playing entry first, then a
// random permutation of the others.
func (q *PlayingQueue) reshuffle() {
	tracks := q.playlist.Tracks()
	if q.currentIndex >= 0 && q.currentIndex < len(tracks) {
		cur := tracks[q.currentIndex]
		rest := append(tracks[:q.currentIndex:q.currentIndex], tracks[q.currentIndex+1:]...)
		q.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		q.shuffled = append([]Track{cur}, rest...)
		return
	}
	q.rng.Shuffle(len(tracks), func(i, j int) { tracks[i], tracks[j] = tracks[j], tracks[i] })
	q.shuffled = tracks
}

// RepeatMode returns the current repeat mode.
func (q *PlayingQueue) RepeatMode() RepeatMode {
	return q.repeatMode
}

// SetRepeatMode sets the repeat mode.
func (q *PlayingQueue) SetRepeatMode(mode RepeatMode) {
	q.repeatMode = mode
}

// CycleRepeatMode cycles Off -> All -> One -> Off and returns the new mode.
func (q *PlayingQueue) CycleRepeatMode() RepeatMode {
	switch q.repeatMode {
	case RepeatOff:
		q.repeatMode = RepeatAll
	case RepeatAll:
		q.repeatMode = RepeatOne
	default:
		q.repeatMode = RepeatOff
	}
	return q.repeatMode
}

// PlayOrder returns the sequence playback advances through.
func (q *PlayingQueue) PlayOrder() []Track {
	if q.shuffle && len(q.shuffled) > 0 {
		return slices.Clone(q.shuffled)
	}
	return q.playlist.Tracks()
}

// NextIndex returns the base index of the entry that follows the playing one
// in play order, or -1 if playback would stop.
func (q *PlayingQueue) NextIndex() int {
	cur := q.Current()
	if cur == nil {
		return -1
	}
	if q.repeatMode == RepeatOne {
		return q.currentIndex
	}

	order := q.PlayOrder()
	pos := slices.IndexFunc(order, func(t Track) bool { return t.ID == cur.ID })
	if pos < 0 {
		return -1
	}
	if pos+1 < len(order) {
		return q.playlist.IndexOf(order[pos+1].ID)
	}
	if q.repeatMode == RepeatAll && len(order) > 0 {
		return q.playlist.IndexOf(order[0].ID)
	}
	return -1
}

// MoveUp moves the entries at the given base indices one position up.
// Entries already packed against the top stay put. Returns true if anything moved.
func (q *PlayingQueue) MoveUp(indices []int) bool {
	sorted := q.validIndices(indices)
	slices.Sort(sorted)
	return q.reorder(func() bool {
		limit := 0
		moved := false
		for _, idx := range sorted {
			if idx <= limit {
				limit = idx + 1
				continue
			}
			q.playlist.Swap(idx, idx-1)
			moved = true
		}
		return moved
	})
}

// MoveDown moves the entries at the given base indices one position down.
// Entries already packed against the bottom stay put. Returns true if anything moved.
func (q *PlayingQueue) MoveDown(indices []int) bool {
	sorted := q.validIndices(indices)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	return q.reorder(func() bool {
		limit := q.playlist.Len() - 1
		moved := false
		for _, idx := range sorted {
			if idx >= limit {
				limit = idx - 1
				continue
			}
			q.playlist.Swap(idx, idx+1)
			moved = true
		}
		return moved
	})
}

// MoveToIndex moves the given entries to just before the entry with beforeID.
// The shuffled sequence receives the same move so a drag in the shuffled view
// lands where it was dropped.
func (q *PlayingQueue) MoveToIndex(entries []Track, beforeID string) bool {
	ids := make(map[string]bool, len(entries))
	for _, e := range entries {
		ids[e.ID] = true
	}
	return q.reorder(func() bool {
		if !q.playlist.MoveBefore(ids, beforeID) {
			return false
		}
		if q.shuffle && len(q.shuffled) > 0 {
			sp := &Playlist{tracks: q.shuffled}
			sp.MoveBefore(ids, beforeID)
			q.shuffled = sp.tracks
		}
		return true
	})
}

// reorder runs fn and keeps currentIndex pointing at the playing entry.
func (q *PlayingQueue) reorder(fn func() bool) bool {
	var currentID string
	if cur := q.Current(); cur != nil {
		currentID = cur.ID
	}
	if !fn() {
		return false
	}
	if currentID != "" {
		q.currentIndex = q.playlist.IndexOf(currentID)
	}
	q.resort()
	return true
}

func (q *PlayingQueue) validIndices(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	result := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= q.playlist.Len() || seen[idx] {
			continue
		}
		seen[idx] = true
		result = append(result, idx)
	}
	return result
}

// Clone returns a copy of the queue for read-only use by renderers.
// The copy shares the random source, so it must not be shuffled.
func (q *PlayingQueue) Clone() *PlayingQueue {
	c := *q
	c.playlist = &Playlist{tracks: q.playlist.Tracks()}
	c.shuffled = slices.Clone(q.shuffled)
	c.sorted = slices.Clone(q.sorted)
	return &c
}
