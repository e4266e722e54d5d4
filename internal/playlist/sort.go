package playlist

import (
	"cmp"
	"slices"
	"strings"
)

// SortColumn is the column an explicit queue sort orders by.
type SortColumn int

const (
	SortNone SortColumn = iota
	SortTitle
	SortArtist
	SortAlbum
	SortDuration
)

// String returns the column label.
func (c SortColumn) String() string {
	switch c {
	case SortNone:
		return "None"
	case SortTitle:
		return "Title"
	case SortArtist:
		return "Artist"
	case SortAlbum:
		return "Album"
	case SortDuration:
		return "Duration"
	default:
		return "Unknown"
	}
}

// SortOrder is the direction of an explicit sort.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// SortBy orders the displayed queue by column without touching the base
// sequence. SortNone clears the sort.
func (q *PlayingQueue) SortBy(column SortColumn, order SortOrder) {
	q.sortColumn = column
	q.sortOrder = order
	q.resort()
}

// ClearSort drops the explicit sort.
func (q *PlayingQueue) ClearSort() {
	q.SortBy(SortNone, SortAsc)
}

// Sort returns the active sort column and order.
func (q *PlayingQueue) Sort() (SortColumn, SortOrder) {
	return q.sortColumn, q.sortOrder
}

// SortedTracks returns a copy of the sorted sequence (empty when unsorted).
func (q *PlayingQueue) SortedTracks() []Track {
	return slices.Clone(q.sorted)
}

// resort rebuilds the sorted sequence from the base sequence.
func (q *PlayingQueue) resort() {
	if q.sortColumn == SortNone || q.playlist.Len() == 0 {
		q.sorted = nil
		return
	}
	tracks := q.playlist.Tracks()
	column, order := q.sortColumn, q.sortOrder
	slices.SortStableFunc(tracks, func(a, b Track) int {
		c := compareTracks(a, b, column)
		if order == SortDesc {
			return -c
		}
		return c
	})
	q.sorted = tracks
}

func compareTracks(a, b Track, column SortColumn) int {
	switch column {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortArtist:
		return strings.Compare(strings.ToLower(a.Artist), strings.ToLower(b.Artist))
	case SortAlbum:
		if c := strings.Compare(strings.ToLower(a.Album), strings.ToLower(b.Album)); c != 0 {
			return c
		}
		return cmp.Compare(a.TrackNumber, b.TrackNumber)
	case SortDuration:
		return cmp.Compare(a.Duration, b.Duration)
	default:
		return 0
	}
}
