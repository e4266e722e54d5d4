package search

import (
	"strings"

	"github.com/llehouerou/quaver/internal/playlist"
)

// Source identifies which sequence a projection was taken from.
type Source int

const (
	SourceBase Source = iota
	SourceShuffled
	SourceSorted
	SourceFiltered
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceBase:
		return "base"
	case SourceShuffled:
		return "shuffled"
	case SourceSorted:
		return "sorted"
	case SourceFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// Projection returns the sequence the queue view shows and where it came
// from. Precedence: search results, then the explicit sort, then the
// shuffled order, then the base order.
func Projection(q *playlist.PlayingQueue, query string) ([]playlist.Track, Source) {
	if strings.TrimSpace(query) != "" {
		return Filter(q.Tracks(), query, DefaultFields), SourceFiltered
	}
	if sorted := q.SortedTracks(); len(sorted) > 0 {
		return sorted, SourceSorted
	}
	if q.Shuffle() {
		return q.ShuffledTracks(), SourceShuffled
	}
	return q.Tracks(), SourceBase
}
