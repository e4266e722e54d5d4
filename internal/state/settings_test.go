package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settingsBackends runs fn against the SQLite manager and the mock.
func settingsBackends(t *testing.T, defaults Defaults, fn func(t *testing.T, s Settings)) {
	t.Helper()
	t.Run("sqlite", func(t *testing.T) {
		fn(t, setupTestManager(t, defaults))
	})
	t.Run("mock", func(t *testing.T) {
		fn(t, NewMockWithDefaults(defaults))
	})
}

func TestSettings_Defaults(t *testing.T) {
	settingsBackends(t, DefaultDefaults(), func(t *testing.T, s Settings) {
		assert.Equal(t, DefaultRowHeight, s.RowHeight())
		assert.Equal(t, DefaultFontSize, s.FontSize())
		assert.Equal(t, DefaultColumns(), s.Columns())
		assert.False(t, s.ScrollWithCurrentSong())
		assert.False(t, s.CacheImages())
		assert.InDelta(t, 1, s.Volume(), 1e-9)
	})
}

func TestSettings_ConfiguredDefaults(t *testing.T) {
	d := Defaults{RowHeight: 9, FontSize: 15, CacheImages: true, Volume: 0.5}
	settingsBackends(t, d, func(t *testing.T, s Settings) {
		assert.Equal(t, MaxRowHeight, s.RowHeight(), "clamped")
		assert.Equal(t, 15, s.FontSize())
		assert.True(t, s.CacheImages())
		assert.InDelta(t, 0.5, s.Volume(), 1e-9)
		assert.Equal(t, DefaultColumns(), s.Columns(), "empty columns fall back")
	})
}

func TestSettings_SetAndGet(t *testing.T) {
	settingsBackends(t, DefaultDefaults(), func(t *testing.T, s Settings) {
		require.NoError(t, s.SetRowHeight(3))
		require.NoError(t, s.SetFontSize(11))
		require.NoError(t, s.SetScrollWithCurrentSong(true))
		require.NoError(t, s.SetCacheImages(true))
		require.NoError(t, s.SetVolume(0.25))

		assert.Equal(t, 3, s.RowHeight())
		assert.Equal(t, 11, s.FontSize())
		assert.True(t, s.ScrollWithCurrentSong())
		assert.True(t, s.CacheImages())
		assert.InDelta(t, 0.25, s.Volume(), 1e-9)
	})
}

func TestSettings_Clamping(t *testing.T) {
	tests := []struct {
		name string
		set  func(Settings) error
		get  func(Settings) float64
		want float64
	}{
		{"row height low", func(s Settings) error { return s.SetRowHeight(0) }, func(s Settings) float64 { return float64(s.RowHeight()) }, MinRowHeight},
		{"row height high", func(s Settings) error { return s.SetRowHeight(12) }, func(s Settings) float64 { return float64(s.RowHeight()) }, MaxRowHeight},
		{"font size low", func(s Settings) error { return s.SetFontSize(2) }, func(s Settings) float64 { return float64(s.FontSize()) }, MinFontSize},
		{"volume high", func(s Settings) error { return s.SetVolume(4) }, func(s Settings) float64 { return s.Volume() }, 1},
		{"volume low", func(s Settings) error { return s.SetVolume(-1) }, func(s Settings) float64 { return s.Volume() }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMock()
			require.NoError(t, tt.set(s))
			assert.InDelta(t, tt.want, tt.get(s), 1e-9)
		})
	}
}

func TestSettings_Columns(t *testing.T) {
	settingsBackends(t, DefaultDefaults(), func(t *testing.T, s Settings) {
		cols := []Column{{ID: "title", Label: "Title"}, {ID: "duration", Label: "Time", Width: 6}}
		require.NoError(t, s.SetColumns(cols))
		assert.Equal(t, cols, s.Columns())

		assert.Error(t, s.SetColumns(nil))
	})
}

func TestSettings_ColumnsReturnsCopy(t *testing.T) {
	s := NewMock()
	cols := s.Columns()
	cols[0].Label = "mutated"

	assert.Equal(t, DefaultColumns(), s.Columns())
}

func TestManager_SettingsPersistAcrossReload(t *testing.T) {
	m := setupTestManager(t, DefaultDefaults())
	require.NoError(t, m.SetRowHeight(2))
	require.NoError(t, m.SetColumns([]Column{{ID: "title", Label: "Title"}}))

	// Drop the cache and reload from the table.
	require.NoError(t, m.loadSettings())

	assert.Equal(t, 2, m.RowHeight())
	assert.Equal(t, []Column{{ID: "title", Label: "Title"}}, m.Columns())
}

func TestManager_CorruptValueFallsBack(t *testing.T) {
	m := setupTestManager(t, DefaultDefaults())
	_, err := m.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?), (?, ?), (?, ?)`,
		KeyRowHeight, "tall", KeyColumns, "{not json", KeyCacheImages, "maybe")
	require.NoError(t, err)
	require.NoError(t, m.loadSettings())

	assert.Equal(t, DefaultRowHeight, m.RowHeight())
	assert.Equal(t, DefaultColumns(), m.Columns())
	assert.False(t, m.CacheImages())
}

func TestMock_FailWrites(t *testing.T) {
	m := NewMock()
	m.FailWrites(true)

	assert.Error(t, m.SetRowHeight(2))
	assert.Equal(t, DefaultRowHeight, m.RowHeight())
}

func TestOpenPath_NilLogger(t *testing.T) {
	m, err := OpenPath(":memory:", DefaultDefaults(), nil)
	require.NoError(t, err)
	defer m.Close()
	assert.NotNil(t, m.logger)
}
