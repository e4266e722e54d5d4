// Package artcache keeps small album cover thumbnails on disk, one per album.
package artcache

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // cover decoders
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/config"
	"github.com/llehouerou/quaver/internal/playlist"
)

// ErrNoArt is returned when a track has neither embedded nor folder art.
var ErrNoArt = errors.New("no cover art")

// Cache is a disk cache of album thumbnails keyed by album ID.
type Cache struct {
	dir        string
	thumbWidth uint
	maxAge     time.Duration
	logger     *zap.Logger

	mu      sync.Mutex
	known   map[string]bool // album ID -> thumbnail on disk
	missing map[string]bool // album ID -> no art found
}

// New creates the cache directory and prunes stale entries in the background.
func New(cfg config.ArtCacheConfig, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{
		dir:        cfg.Dir,
		thumbWidth: uint(max(cfg.ThumbWidth, 1)), //nolint:gosec // clamped positive
		maxAge:     time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		logger:     logger,
		known:      make(map[string]bool),
		missing:    make(map[string]bool),
	}

	go c.prune()

	return c, nil
}

// Path returns where the thumbnail for albumID is stored.
func (c *Cache) Path(albumID string) string {
	return filepath.Join(c.dir, albumID+".png")
}

// Has reports whether the thumbnail for albumID is cached.
func (c *Cache) Has(albumID string) bool {
	if c == nil || albumID == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.known[albumID] {
		return true
	}
	if _, err := os.Stat(c.Path(albumID)); err == nil {
		c.known[albumID] = true
		return true
	}
	return false
}

// Missing reports whether a previous Ensure found no art for albumID.
func (c *Cache) Missing(albumID string) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.missing[albumID]
}

// Get returns the cached PNG for albumID, or nil.
func (c *Cache) Get(albumID string) []byte {
	if !c.Has(albumID) {
		return nil
	}
	path := c.Path(albumID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file to update mtime (keeps frequently used entries fresh)
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Ensure caches the thumbnail for t's album if it is not cached yet.
func (c *Cache) Ensure(t playlist.Track) error {
	if c == nil || t.AlbumID == "" || c.Has(t.AlbumID) {
		return nil
	}

	raw, err := ExtractCoverArt(t.Path)
	if err != nil {
		return err
	}
	if raw == nil {
		c.mu.Lock()
		c.missing[t.AlbumID] = true
		c.mu.Unlock()
		return ErrNoArt
	}

	thumb, err := c.thumbnail(raw)
	if err != nil {
		return err
	}

	tmp := c.Path(t.AlbumID) + ".tmp"
	if err := os.WriteFile(tmp, thumb, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, c.Path(t.AlbumID)); err != nil {
		return err
	}

	c.mu.Lock()
	c.known[t.AlbumID] = true
	c.mu.Unlock()
	c.logger.Debug("album art cached",
		zap.String("album_id", t.AlbumID),
		zap.String("album", t.Album))
	return nil
}

// thumbnail decodes raw, scales it to the configured width and encodes PNG.
func (c *Cache) thumbnail(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if uint(img.Bounds().Dx()) > c.thumbWidth { //nolint:gosec // image width is non-negative
		img = resize.Resize(c.thumbWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// prune removes cache entries older than maxAge.
func (c *Cache) prune() {
	if c.maxAge <= 0 {
		return
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-c.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(c.dir, entry.Name())) == nil {
				removed++
			}
		}
	}
	if removed > 0 {
		c.logger.Debug("album art pruned", zap.Int("entries", removed))
	}
}
