package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/config"
	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/helpbindings"
	"github.com/llehouerou/quaver/internal/ui/nowplaying"
	"github.com/llehouerou/quaver/internal/ui/options"
	"github.com/llehouerou/quaver/internal/ui/testutil"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func savedQueue(titles ...string) *state.QueueState {
	s := &state.QueueState{CurrentIndex: 0}
	for i, title := range titles {
		s.Tracks = append(s.Tracks, state.QueueTrack{
			EntryID:     title,
			Path:        "/music/" + title + ".mp3",
			Title:       title,
			Artist:      "Artist",
			Album:       "Album",
			TrackNumber: i + 1,
		})
	}
	return s
}

// newLoadedModel returns an 80x24 model whose queue was loaded from mock.
func newLoadedModel(t *testing.T, mock *state.Mock) Model {
	t.Helper()
	m := New(Deps{Config: &config.Config{}, State: mock})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	msg := LoadQueueCmd(mock, nil)()
	m, _ = update(t, m, msg)
	require.NotNil(t, m.Store)
	return m
}

func TestLoadQueueCmd_RestoresSavedQueue(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a", "b", "c"))

	msg, ok := LoadQueueCmd(mock, nil)().(QueueLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 3, msg.Queue.Len())
	assert.Equal(t, 0, msg.Queue.CurrentIndex())
	assert.Zero(t, msg.Added)
}

func TestLoadQueueCmd_AppendsPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02.mp3", "01.flac", "cover.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a"))

	msg, ok := LoadQueueCmd(mock, []string{dir})().(QueueLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, 2, msg.Added)

	tracks := msg.Queue.Tracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, "a", tracks[0].Title)
	assert.Equal(t, "01.flac", tracks[1].Title)
	assert.Equal(t, "02.mp3", tracks[2].Title)
}

func TestLoadQueueCmd_MissingPath(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a"))

	msg, ok := LoadQueueCmd(mock, []string{filepath.Join(t.TempDir(), "nope")})().(QueueLoadedMsg)
	require.True(t, ok)
	require.Error(t, msg.Err)
	assert.Equal(t, errmsg.OpFileLoad, msg.Op)
	assert.Equal(t, 1, msg.Queue.Len(), "saved queue is kept")
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m := New(Deps{State: state.NewMock()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Equal(t, 120, m.Page.Width())
	assert.Equal(t, 40-hintHeight-footerHeight, m.Page.Height())
}

func TestView_LoadingPlaceholder(t *testing.T) {
	m := New(Deps{State: state.NewMock()})
	assert.Empty(t, m.View(), "nothing to draw before the first size")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Loading queue")
	assert.Len(t, testutil.SplitLines(view), 24)
}

func TestUpdate_QueueLoaded_AppliesSettings(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a", "b"))
	require.NoError(t, mock.SetScrollWithCurrentSong(true))
	require.NoError(t, mock.SetVolume(0.4))

	m := newLoadedModel(t, mock)

	snap := m.Store.Snapshot()
	assert.True(t, snap.ScrollWithCurrentSong)
	assert.InDelta(t, 0.4, snap.Volume, 1e-9)
	assert.True(t, m.Page.Loaded())
	assert.Len(t, m.Page.Displayed(), 2)
	assert.Empty(t, m.ErrorMsg)
}

func TestUpdate_QueueLoaded_ShowsError(t *testing.T) {
	mock := state.NewMock()
	m := New(Deps{State: mock})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, QueueLoadedMsg{
		Queue: playlist.NewQueue(),
		Op:    errmsg.OpQueueLoad,
		Err:   errors.New("disk on fire"),
	})

	require.NotNil(t, m.Store, "an empty queue is still usable")
	assert.Equal(t, "Failed to load queue: disk on fire", m.ErrorMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "disk on fire")
}

func TestUpdate_QueueLoaded_SavesAddedEntries(t *testing.T) {
	mock := state.NewMock()
	m := New(Deps{State: mock})

	q := playlist.NewQueue()
	q.Add(playlist.Track{ID: "x", Title: "x"})
	_, _ = update(t, m, QueueLoadedMsg{Queue: q, Added: 1})

	assert.Equal(t, 1, mock.SaveCount())
}

func TestWatchStoreEvents_QueueChangeSavesQueue(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a"))
	m := newLoadedModel(t, mock)
	before := mock.SaveCount()

	require.NoError(t, m.Store.Dispatch(store.AddTracks{
		Tracks: []playlist.Track{{ID: "b", Title: "b"}},
	}))
	msg := m.WatchStoreEvents()()
	require.IsType(t, QueueChangedMsg{}, msg)

	m, cmd := update(t, m, msg)
	assert.NotNil(t, cmd, "watch is re-armed")
	assert.Equal(t, before+1, mock.SaveCount())
	assert.Len(t, m.Page.Displayed(), 2)
}

func TestWatchStoreEvents_RepeatSavesQueue(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a"))
	m := newLoadedModel(t, mock)
	before := mock.SaveCount()

	require.NoError(t, m.Store.Dispatch(store.CycleRepeat{}))
	msg := m.WatchStoreEvents()()
	require.IsType(t, SettingChangedMsg{}, msg)

	_, _ = update(t, m, msg)
	assert.Equal(t, before+1, mock.SaveCount())
}

func TestWatchStoreEvents_Closed(t *testing.T) {
	m := newLoadedModel(t, state.NewMock())
	m.Store.Close()

	msg := m.WatchStoreEvents()()
	require.IsType(t, StoreClosedMsg{}, msg)

	m, cmd := update(t, m, msg)
	assert.Nil(t, cmd)
	assert.Nil(t, m.WatchStoreEvents())
}

func TestKeys_QuitSavesQueue(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a"))
	m := newLoadedModel(t, mock)
	before := mock.SaveCount()

	_, cmd := update(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, before+1, mock.SaveCount())
}

func TestKeys_SearchKeepsLetters(t *testing.T) {
	m := newLoadedModel(t, state.NewMock())

	m, _ = update(t, m, testutil.Key("/"))
	require.True(t, m.Page.Searching())

	m, cmd := update(t, m, testutil.Key("q"))
	assert.Equal(t, "q", m.Page.Query())
	for _, msg := range testutil.Messages(cmd) {
		assert.NotEqual(t, tea.QuitMsg{}, msg)
	}
}

func TestKeys_HelpPopup(t *testing.T) {
	m := newLoadedModel(t, state.NewMock())

	m, _ = update(t, m, testutil.Key("?"))
	require.IsType(t, &helpbindings.Model{}, m.Popup)
	assert.Contains(t, testutil.StripANSI(m.View()), "Global")

	// Keys go to the popup while it is open.
	m, cmd := update(t, m, testutil.Key("esc"))
	require.NotNil(t, m.Popup)
	msgs := testutil.Messages(cmd)
	require.Len(t, msgs, 1)

	m, _ = update(t, m, msgs[0])
	assert.Nil(t, m.Popup)
}

func TestKeys_OptionsPopupBlocksQuit(t *testing.T) {
	m := newLoadedModel(t, state.NewMock())

	m, _ = update(t, m, testutil.Key("o"))
	require.IsType(t, &options.Model{}, m.Popup)

	m, cmd := update(t, m, testutil.Key("q"))
	assert.Nil(t, cmd)
	assert.NotNil(t, m.Popup)
}

func TestOptionsChanged_AutoScroll(t *testing.T) {
	mock := state.NewMock()
	m := newLoadedModel(t, mock)
	require.False(t, m.Store.Snapshot().ScrollWithCurrentSong)

	require.NoError(t, mock.SetScrollWithCurrentSong(true))
	m, _ = update(t, m, options.ActionMsg(options.Changed{Field: options.FieldAutoScroll}))

	assert.True(t, m.Store.Snapshot().ScrollWithCurrentSong)
}

func TestOptionsChanged_Volume(t *testing.T) {
	mock := state.NewMock()
	m := newLoadedModel(t, mock)

	require.NoError(t, mock.SetVolume(0.25))
	m, _ = update(t, m, options.ActionMsg(options.Changed{Field: options.FieldVolume}))

	assert.InDelta(t, 0.25, m.Store.Snapshot().Volume, 1e-9)
}

func TestOptionsChanged_CacheImagesOpensCache(t *testing.T) {
	mock := state.NewMock()
	cfg := &config.Config{ArtCache: config.ArtCacheConfig{Dir: t.TempDir(), ThumbWidth: 32}}
	m := New(Deps{Config: cfg, State: mock})
	m, _ = update(t, m, LoadQueueCmd(mock, nil)())
	require.Nil(t, m.Art)

	require.NoError(t, mock.SetCacheImages(true))
	m, _ = update(t, m, options.ActionMsg(options.Changed{Field: options.FieldCacheImages}))

	assert.NotNil(t, m.Art)
}

func TestFailedActions_ShowInFooterUntilNextKey(t *testing.T) {
	m := newLoadedModel(t, state.NewMock())

	m, _ = update(t, m, nowplaying.ActionMsg(nowplaying.Failed{Message: "Failed to update queue: boom"}))
	assert.Equal(t, "Failed to update queue: boom", m.ErrorMsg)
	assert.Contains(t, testutil.StripANSI(m.View()), "boom")

	m, _ = update(t, m, testutil.Key("j"))
	assert.Empty(t, m.ErrorMsg)

	m, _ = update(t, m, options.ActionMsg(options.Failed{Message: "Failed to save setting: nope"}))
	assert.Equal(t, "Failed to save setting: nope", m.ErrorMsg)
}

func TestMouse_FooterIgnored(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("a", "b"))
	m := newLoadedModel(t, mock)

	m, cmd := update(t, m, testutil.Press(5, m.Height-1))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Store.Snapshot().Selection.Len())
}

func TestView_ComposesPageHintsAndFooter(t *testing.T) {
	mock := state.NewMock()
	mock.SetQueue(savedQueue("alpha", "beta"))
	m := newLoadedModel(t, mock)

	view := testutil.StripANSI(m.View())
	lines := testutil.SplitLines(view)
	require.Len(t, lines, 24)
	assert.Contains(t, view, "alpha")
	assert.Contains(t, lines[m.pageHeight()], "Play entry")
	assert.Contains(t, lines[len(lines)-1], "alpha", "player bar shows the playing entry")
}
