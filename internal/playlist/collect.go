package playlist

import (
	"crypto/sha1" //nolint:gosec // album keys only need to be stable, not secure
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
)

// musicExtensions lists the file types accepted into the queue.
var musicExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
}

// IsMusicFile reports whether path has a supported audio extension.
func IsMusicFile(path string) bool {
	return musicExtensions[strings.ToLower(filepath.Ext(path))]
}

// NewID returns a fresh queue entry identity.
func NewID() string {
	return uuid.NewString()
}

// AlbumKey derives the album art cache key shared by all tracks of an album.
// Tracks without album metadata are keyed by their directory.
func AlbumKey(artist, album, path string) string {
	source := strings.ToLower(artist) + "\x00" + strings.ToLower(album)
	if album == "" {
		source = filepath.Dir(path)
	}
	sum := sha1.Sum([]byte(source)) //nolint:gosec // see import
	return hex.EncodeToString(sum[:8])
}

// FromPath creates a queue entry from a file path by reading its metadata.
func FromPath(path string) Track {
	t := Track{
		ID:    NewID(),
		Path:  path,
		Title: filepath.Base(path),
	}

	f, err := os.Open(path)
	if err != nil {
		t.AlbumID = AlbumKey("", "", path)
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Fallback to basic info from filename
		t.AlbumID = AlbumKey("", "", path)
		return t
	}

	if title := m.Title(); title != "" {
		t.Title = title
	}
	t.Artist = m.Artist()
	t.Album = m.Album()
	t.TrackNumber, _ = m.Track()
	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = t.Artist
	}
	t.AlbumID = AlbumKey(albumArtist, t.Album, path)
	return t
}

// CollectFromPaths turns command line arguments into queue entries.
// Directories are walked recursively; their files are sorted by path.
func CollectFromPaths(paths []string) ([]Track, error) {
	var tracks []Track
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if IsMusicFile(p) {
				tracks = append(tracks, FromPath(p))
			}
			continue
		}

		var files []string
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Skip directories/files with errors, continue walking
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if !d.IsDir() && IsMusicFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		for _, f := range files {
			tracks = append(tracks, FromPath(f))
		}
	}
	return tracks, nil
}

// FormatDuration formats a duration as MM:SS.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return formatDuration(m, s)
}

func formatDuration(m, s int) string {
	return padInt(m) + ":" + padInt(s)
}

func padInt(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	if n >= 100 {
		return "99"
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
