package search

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/playlist"
)

func track(id, title, artist, album string) playlist.Track {
	return playlist.Track{ID: id, Title: title, Artist: artist, Album: album}
}

func idsOf(tracks []playlist.Track) []string {
	out := make([]string, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, t.ID)
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello", "hello"},
		{"Café", "cafe"},
		{"Björk", "bjork"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestFilter(t *testing.T) {
	tracks := []playlist.Track{
		track("1", "Jóga", "Björk", "Homogenic"),
		track("2", "Hunter", "Björk", "Homogenic"),
		track("3", "Teardrop", "Massive Attack", "Mezzanine"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"title match", "hunter", []string{"2"}},
		{"artist match ignores diacritics", "bjork", []string{"1", "2"}},
		{"album match", "mezz", []string{"3"}},
		{"words must all match", "bjork joga", []string{"1"}},
		{"words across fields", "massive teardrop", []string{"3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tracks, tt.query, DefaultFields)
			assert.Equal(t, tt.want, idsOf(got))
		})
	}
}

func TestFilter_RestrictedFields(t *testing.T) {
	tracks := []playlist.Track{track("1", "Title", "Someone", "Album")}

	assert.Empty(t, Filter(tracks, "someone", []Field{FieldTitle}))
	assert.Len(t, Filter(tracks, "someone", []Field{FieldArtist}), 1)
}

func newQueue(tracks ...playlist.Track) *playlist.PlayingQueue {
	q := playlist.NewQueueWithRand(rand.New(rand.NewPCG(7, 7)))
	q.Add(tracks...)
	return q
}

func TestProjection_Precedence(t *testing.T) {
	a := track("a", "Alpha", "X", "")
	b := track("b", "Bravo", "Y", "")
	c := track("c", "Charlie", "Z", "")

	t.Run("base", func(t *testing.T) {
		q := newQueue(a, b, c)
		got, src := Projection(q, "")
		assert.Equal(t, SourceBase, src)
		assert.Equal(t, []string{"a", "b", "c"}, idsOf(got))
	})

	t.Run("shuffled keeps base current index", func(t *testing.T) {
		q := newQueue(a, b, c)
		q.JumpTo(1)
		q.SetShuffle(true)
		got, src := Projection(q, "")
		assert.Equal(t, SourceShuffled, src)
		assert.Equal(t, idsOf(q.ShuffledTracks()), idsOf(got))
		assert.Equal(t, 1, q.CurrentIndex())
		assert.Equal(t, "b", q.Current().ID)
	})

	t.Run("sorted beats shuffled", func(t *testing.T) {
		q := newQueue(c, a, b)
		q.SetShuffle(true)
		q.SortBy(playlist.SortTitle, playlist.SortAsc)
		got, src := Projection(q, "")
		assert.Equal(t, SourceSorted, src)
		assert.Equal(t, []string{"a", "b", "c"}, idsOf(got))
	})

	t.Run("search beats everything", func(t *testing.T) {
		q := newQueue(c, a, b)
		q.SetShuffle(true)
		q.SortBy(playlist.SortTitle, playlist.SortDesc)
		got, src := Projection(q, "a")
		require.Equal(t, SourceFiltered, src)
		assert.Equal(t, []string{"c", "a", "b"}, idsOf(got), "filtered results keep base order")
	})

	t.Run("blank query is not a search", func(t *testing.T) {
		q := newQueue(a, b)
		_, src := Projection(q, "   ")
		assert.Equal(t, SourceBase, src)
	})
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "filtered", SourceFiltered.String())
	assert.Equal(t, "unknown", Source(42).String())
}
