// Package search filters queue entries for the now playing search box and
// picks the sequence the queue view displays.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/llehouerou/quaver/internal/playlist"
)

// Field names a track attribute the filter matches against.
type Field string

const (
	FieldTitle  Field = "title"
	FieldArtist Field = "artist"
	FieldAlbum  Field = "album"
)

// DefaultFields are the attributes the now playing search box looks at.
var DefaultFields = []Field{FieldTitle, FieldArtist, FieldAlbum}

func fieldValue(t playlist.Track, f Field) string {
	switch f {
	case FieldTitle:
		return t.Title
	case FieldArtist:
		return t.Artist
	case FieldAlbum:
		return t.Album
	default:
		return ""
	}
}

// Filter returns the tracks matching query, in their original order.
// The query is split into words; every word must appear in at least one of
// the fields. Matching ignores case and diacritics. An empty query returns
// tracks unchanged.
func Filter(tracks []playlist.Track, query string, fields []Field) []playlist.Track {
	words := strings.Fields(Normalize(query))
	if len(words) == 0 {
		return tracks
	}

	result := make([]playlist.Track, 0, len(tracks))
	for _, t := range tracks {
		values := make([]string, len(fields))
		for i, f := range fields {
			values[i] = Normalize(fieldValue(t, f))
		}
		if matchesAll(words, values) {
			result = append(result, t)
		}
	}
	return result
}

func matchesAll(words, values []string) bool {
	for _, w := range words {
		found := false
		for _, v := range values {
			if strings.Contains(v, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Normalize lowercases s and strips diacritics so "Café" matches "cafe".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
