package artcache

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/playlist"
)

// WarmedMsg reports which albums were cached by a Warm command.
type WarmedMsg struct {
	AlbumIDs []string
}

// Warm returns a command caching the thumbnails of tracks' albums in the
// background, or nil when there is nothing to do.
func Warm(c *Cache, tracks []playlist.Track) tea.Cmd {
	if c == nil {
		return nil
	}
	var todo []playlist.Track
	seen := make(map[string]bool)
	for _, t := range tracks {
		if t.AlbumID == "" || seen[t.AlbumID] || c.Missing(t.AlbumID) || c.Has(t.AlbumID) {
			continue
		}
		seen[t.AlbumID] = true
		todo = append(todo, t)
	}
	if len(todo) == 0 {
		return nil
	}

	return func() tea.Msg {
		var cached []string
		for _, t := range todo {
			err := c.Ensure(t)
			switch {
			case err == nil:
				cached = append(cached, t.AlbumID)
			case errors.Is(err, ErrNoArt):
			default:
				c.logger.Warn("album art",
					zap.String("path", t.Path),
					zap.Error(err))
			}
		}
		return WarmedMsg{AlbumIDs: cached}
	}
}
