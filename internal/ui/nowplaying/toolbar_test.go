package nowplaying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/testutil"
)

func TestClearQueue_PausesThenResets(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)
	apply(t, h, rec, store.SetStatus{Status: playback.StatusPlaying})
	rec.reset()

	h.SendKey("c")
	assert.Equal(t, []string{"store.clear_play_queue", "store.set_status"}, rec.actions)
	snap := rec.Snapshot()
	assert.True(t, snap.Queue.IsEmpty())
	assert.Equal(t, playback.StatusPaused, snap.Transport.Status)

	h.Settle(nil)
	assert.Equal(t, []string{"store.clear_play_queue", "store.set_status", "store.reset_player"}, rec.actions)
	assert.Empty(t, h.Model().Displayed())
}

func TestClearQueue_HeaderButton(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)

	h.Send(testutil.Press(2, 1))

	assert.Equal(t, []string{"store.clear_play_queue", "store.set_status"}, rec.actions)
}

func TestShuffle_TogglesThenReshuffles(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c", "d")...)

	h.SendKey("S")
	assert.Equal(t, []string{"store.toggle_shuffle"}, rec.actions)
	assert.True(t, rec.Snapshot().Queue.Shuffle())

	h.Send(testutil.Press(16, 1))
	assert.Equal(t, []string{"store.toggle_shuffle", "store.shuffle_in_place"}, rec.actions)
	assert.True(t, rec.Snapshot().Queue.Shuffle())
}

func TestAutoScroll_TogglePersists(t *testing.T) {
	h, rec, settings := newPage(t, tracks("a", "b")...)

	h.SendKey("a")
	assert.True(t, settings.ScrollWithCurrentSong())
	assert.True(t, rec.Snapshot().ScrollWithCurrentSong)
	assert.Equal(t, []string{"store.set_playback_setting"}, rec.actions)

	h.Send(testutil.Press(26, 1))
	assert.False(t, settings.ScrollWithCurrentSong())
	assert.False(t, rec.Snapshot().ScrollWithCurrentSong)
}

func TestAutoScroll_SaveFailure(t *testing.T) {
	h, rec, settings := newPage(t, tracks("a", "b")...)
	settings.FailWrites(true)

	msgs := testutil.Messages(h.SendKey("a"))

	require.Len(t, msgs, 1)
	am, ok := msgs[0].(action.Msg)
	require.True(t, ok)
	assert.IsType(t, Failed{}, am.Action)
	assert.Empty(t, rec.actions)
	assert.False(t, rec.Snapshot().ScrollWithCurrentSong)
}

func TestCycleSort(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)

	steps := []struct {
		column playlist.SortColumn
		order  playlist.SortOrder
	}{
		{playlist.SortTitle, playlist.SortAsc},
		{playlist.SortTitle, playlist.SortDesc},
		{playlist.SortArtist, playlist.SortAsc},
		{playlist.SortArtist, playlist.SortDesc},
		{playlist.SortAlbum, playlist.SortAsc},
		{playlist.SortAlbum, playlist.SortDesc},
		{playlist.SortDuration, playlist.SortAsc},
		{playlist.SortDuration, playlist.SortDesc},
		{playlist.SortNone, playlist.SortAsc},
	}
	for _, step := range steps {
		h.SendKey("s")
		column, order := rec.Snapshot().Queue.Sort()
		assert.Equal(t, step.column, column)
		assert.Equal(t, step.order, order)
	}
}

func TestSortByColumnHeader(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)
	titleX := prefixWidth + 4 + columnGap + 1

	h.Send(testutil.Press(titleX, headerRow))
	column, order := rec.Snapshot().Queue.Sort()
	assert.Equal(t, playlist.SortTitle, column)
	assert.Equal(t, playlist.SortAsc, order)

	h.Send(testutil.Press(titleX, headerRow))
	_, order = rec.Snapshot().Queue.Sort()
	assert.Equal(t, playlist.SortDesc, order)
	assert.Equal(t, []string{"c", "b", "a"}, idsOf(h.Model().Displayed()))

	h.Send(testutil.Press(titleX, headerRow))
	column, _ = rec.Snapshot().Queue.Sort()
	assert.Equal(t, playlist.SortNone, column)

	h.Send(testutil.Press(prefixWidth, headerRow))
	column, _ = rec.Snapshot().Queue.Sort()
	assert.Equal(t, playlist.SortNone, column, "the index column restores queue order")
}

func TestCycleRepeat(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a")...)

	h.SendKey("R")

	assert.Equal(t, playlist.RepeatAll, rec.Snapshot().Queue.RepeatMode())
}

func TestMoveSelected_UsesBaseIndices(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c", "d")...)
	apply(t, h, rec, store.ToggleShuffle{}, store.SetSelected{Track: track("c", "Song c")})

	h.SendKey("K")
	assert.Equal(t, []string{"a", "c", "b", "d"}, idsOf(rec.Snapshot().Queue.Tracks()))

	h.SendKey("J")
	h.SendKey("J")
	assert.Equal(t, []string{"a", "b", "d", "c"}, idsOf(rec.Snapshot().Queue.Tracks()))
}

func TestMoveSelected_SelectsCursorWhenEmpty(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.SendKey("j")
	h.SendKey("J")

	assert.Equal(t, []string{"a", "c", "b"}, idsOf(rec.Snapshot().Queue.Tracks()))
	assert.True(t, rec.Snapshot().Selection.Contains("b"))
	assert.Equal(t, 2, h.Model().CursorIndex(), "cursor stays on the moved entry")
}

func TestDelete_UndoRedo(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.SendKey("j")
	h.SendKey("d")
	assert.Equal(t, []string{"a", "c"}, idsOf(rec.Snapshot().Queue.Tracks()))

	h.SendKey("ctrl+z")
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(rec.Snapshot().Queue.Tracks()))

	h.SendKey("ctrl+y")
	assert.Equal(t, []string{"a", "c"}, idsOf(h.Model().Displayed()))
}
