package state

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	KeyRowHeight             = "music_list_row_height"
	KeyFontSize              = "music_list_font_size"
	KeyColumns               = "music_list_columns"
	KeyScrollWithCurrentSong = "scroll_with_current_song"
	KeyCacheImages           = "cache_images"
	KeyVolume                = "volume"
)

// Bounds for the display settings.
const (
	MinRowHeight = 1
	MaxRowHeight = 4
	MinFontSize  = 8
	MaxFontSize  = 24

	DefaultRowHeight = 1
	DefaultFontSize  = 13
)

// Column is one column of the queue list.
type Column struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Width int    `json:"width"` // cells; 0 shares the remaining width
}

// DefaultColumns is the column layout used when none is saved.
func DefaultColumns() []Column {
	return []Column{
		{ID: "index", Label: "#", Width: 4},
		{ID: "title", Label: "Title"},
		{ID: "artist", Label: "Artist", Width: 20},
		{ID: "album", Label: "Album", Width: 20},
		{ID: "duration", Label: "Time", Width: 6},
	}
}

// Defaults are returned for settings that were never saved.
type Defaults struct {
	RowHeight             int
	FontSize              int
	Columns               []Column
	ScrollWithCurrentSong bool
	CacheImages           bool
	Volume                float64
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		RowHeight: DefaultRowHeight,
		FontSize:  DefaultFontSize,
		Columns:   DefaultColumns(),
		Volume:    1,
	}
}

func (d Defaults) normalized() Defaults {
	if d.RowHeight == 0 {
		d.RowHeight = DefaultRowHeight
	}
	d.RowHeight = clampInt(d.RowHeight, MinRowHeight, MaxRowHeight)
	if d.FontSize == 0 {
		d.FontSize = DefaultFontSize
	}
	d.FontSize = clampInt(d.FontSize, MinFontSize, MaxFontSize)
	if len(d.Columns) == 0 {
		d.Columns = DefaultColumns()
	}
	d.Volume = min(max(d.Volume, 0), 1)
	return d
}

// Settings are the persisted display and playback preferences. Reads and
// writes are synchronous.
type Settings interface {
	RowHeight() int
	SetRowHeight(lines int) error
	FontSize() int
	SetFontSize(size int) error
	Columns() []Column
	SetColumns(columns []Column) error
	ScrollWithCurrentSong() bool
	SetScrollWithCurrentSong(enabled bool) error
	CacheImages() bool
	SetCacheImages(enabled bool) error
	Volume() float64
	SetVolume(volume float64) error
}

// kvStore is the raw key/value layer under the typed accessors.
type kvStore interface {
	getValue(key string) (string, bool)
	setValue(key, value string) error
}

// typed implements Settings on top of a kvStore.
type typed struct {
	kv       kvStore
	defaults Defaults
}

func (s typed) RowHeight() int {
	return clampInt(s.getInt(KeyRowHeight, s.defaults.RowHeight), MinRowHeight, MaxRowHeight)
}

func (s typed) SetRowHeight(lines int) error {
	lines = clampInt(lines, MinRowHeight, MaxRowHeight)
	return s.kv.setValue(KeyRowHeight, strconv.Itoa(lines))
}

func (s typed) FontSize() int {
	return clampInt(s.getInt(KeyFontSize, s.defaults.FontSize), MinFontSize, MaxFontSize)
}

func (s typed) SetFontSize(size int) error {
	size = clampInt(size, MinFontSize, MaxFontSize)
	return s.kv.setValue(KeyFontSize, strconv.Itoa(size))
}

func (s typed) Columns() []Column {
	raw, ok := s.kv.getValue(KeyColumns)
	if !ok {
		return cloneColumns(s.defaults.Columns)
	}
	var cols []Column
	if err := json.Unmarshal([]byte(raw), &cols); err != nil || len(cols) == 0 {
		return cloneColumns(s.defaults.Columns)
	}
	return cols
}

func (s typed) SetColumns(columns []Column) error {
	if len(columns) == 0 {
		return fmt.Errorf("%s: at least one column is required", KeyColumns)
	}
	raw, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	return s.kv.setValue(KeyColumns, string(raw))
}

func (s typed) ScrollWithCurrentSong() bool {
	return s.getBool(KeyScrollWithCurrentSong, s.defaults.ScrollWithCurrentSong)
}

func (s typed) SetScrollWithCurrentSong(enabled bool) error {
	return s.kv.setValue(KeyScrollWithCurrentSong, strconv.FormatBool(enabled))
}

func (s typed) CacheImages() bool {
	return s.getBool(KeyCacheImages, s.defaults.CacheImages)
}

func (s typed) SetCacheImages(enabled bool) error {
	return s.kv.setValue(KeyCacheImages, strconv.FormatBool(enabled))
}

func (s typed) Volume() float64 {
	raw, ok := s.kv.getValue(KeyVolume)
	if !ok {
		return s.defaults.Volume
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return s.defaults.Volume
	}
	return min(max(v, 0), 1)
}

func (s typed) SetVolume(volume float64) error {
	volume = min(max(volume, 0), 1)
	return s.kv.setValue(KeyVolume, strconv.FormatFloat(volume, 'f', -1, 64))
}

func (s typed) getInt(key string, def int) int {
	raw, ok := s.kv.getValue(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (s typed) getBool(key string, def bool) bool {
	raw, ok := s.kv.getValue(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// loadSettings fills the in-memory cache from the settings table.
func (m *Manager) loadSettings() error {
	rows, err := m.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return err
	}
	defer rows.Close()

	cache := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		cache[k] = v
	}
	if err := rows.Err(); err != nil {
		return err
	}
	m.cache = cache
	return nil
}

func (m *Manager) getValue(key string) (string, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()
	v, ok := m.cache[key]
	return v, ok
}

// setValue writes through to the database before updating the cache.
func (m *Manager) setValue(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	m.cacheMu.Lock()
	m.cache[key] = value
	m.cacheMu.Unlock()
	return nil
}

func cloneColumns(cols []Column) []Column {
	out := make([]Column, len(cols))
	copy(out, cols)
	return out
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
