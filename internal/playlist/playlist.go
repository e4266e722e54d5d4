package playlist

import "time"

// Track is a single entry of the play queue.
// ID identifies the entry, not the file: the same file queued twice gets two IDs.
type Track struct {
	ID          string
	Path        string // file path for playback
	Title       string
	Artist      string
	Album       string
	AlbumID     string // album art cache key
	TrackNumber int
	Duration    time.Duration
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Set replaces the playlist contents with a copy of tracks.
func (p *Playlist) Set(tracks []Track) {
	p.tracks = append(p.tracks[:0], tracks...)
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IndexOf returns the index of the track with the given ID, or -1.
func (p *Playlist) IndexOf(id string) int {
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Swap exchanges the tracks at i and j. Out of bounds indices are ignored.
func (p *Playlist) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(p.tracks) || j >= len(p.tracks) {
		return
	}
	p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
}

// MoveBefore moves every track whose ID is in ids to just before the track
// with beforeID, keeping their relative order. Returns false when beforeID is
// unknown, is itself being moved, or ids matches nothing.
func (p *Playlist) MoveBefore(ids map[string]bool, beforeID string) bool {
	if ids[beforeID] || p.IndexOf(beforeID) < 0 {
		return false
	}

	moved := make([]Track, 0, len(ids))
	rest := make([]Track, 0, len(p.tracks))
	for _, t := range p.tracks {
		if ids[t.ID] {
			moved = append(moved, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(moved) == 0 {
		return false
	}

	insertAt := 0
	for i := range rest {
		if rest[i].ID == beforeID {
			insertAt = i
			break
		}
	}

	result := make([]Track, 0, len(p.tracks))
	result = append(result, rest[:insertAt]...)
	result = append(result, moved...)
	result = append(result, rest[insertAt:]...)
	p.tracks = result
	return true
}
