package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMusicFile(t *testing.T) {
	assert.True(t, IsMusicFile("/music/a.mp3"))
	assert.True(t, IsMusicFile("/music/a.FLAC"))
	assert.False(t, IsMusicFile("/music/cover.jpg"))
	assert.False(t, IsMusicFile("/music/noext"))
}

func TestAlbumKey(t *testing.T) {
	a := AlbumKey("Artist", "Album", "/x/1.mp3")
	b := AlbumKey("artist", "ALBUM", "/y/2.mp3")
	assert.Equal(t, a, b, "case and path do not matter when the album is known")

	c := AlbumKey("", "", "/x/1.mp3")
	d := AlbumKey("", "", "/x/2.mp3")
	assert.Equal(t, c, d, "untagged files share their directory key")
	assert.NotEqual(t, a, c)
}

func TestFromPath_FallsBackToFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-really-audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	track := FromPath(path)

	assert.NotEmpty(t, track.ID)
	assert.Equal(t, path, track.Path)
	assert.Equal(t, "not-really-audio.mp3", track.Title)
	assert.Equal(t, AlbumKey("", "", path), track.AlbumID)
}

func TestFromPath_UniqueIDs(t *testing.T) {
	a := FromPath("/does/not/exist.mp3")
	b := FromPath("/does/not/exist.mp3")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCollectFromPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	for _, name := range []string{"02.mp3", "01.mp3", "cover.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(sub, name), []byte("x"), 0o600))
	}

	tracks, err := CollectFromPaths([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"01.mp3", "02.mp3"}, titles(tracks))
}

func TestCollectFromPaths_MissingPath(t *testing.T) {
	_, err := CollectFromPaths([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func titles(tracks []Track) []string {
	out := make([]string, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, t.Title)
	}
	return out
}
