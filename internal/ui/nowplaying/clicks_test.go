package nowplaying

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/testutil"
)

func TestClick_SelectsAfterDebounce(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.Send(testutil.Press(10, rowY(1)))
	assert.Empty(t, rec.actions, "nothing happens before the window ends")

	h.Settle(nil)

	assert.Equal(t, []string{"store.set_selected"}, rec.actions)
	sel := rec.Snapshot().Selection
	assert.Equal(t, 1, sel.Len())
	assert.True(t, sel.Contains("b"))
	assert.Equal(t, 1, h.Model().CursorIndex())
}

func TestClick_DoubleClickPlaysEntry(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)
	apply(t, h, rec, store.SetPlaybackSetting{Key: store.SettingVolume, Value: 0.6})

	h.Send(testutil.Press(10, rowY(2)))
	h.Send(testutil.Press(10, rowY(2)))

	want := []string{
		"store.set_player_volume",
		"store.set_player_volume",
		"store.clear_selected",
		"store.reset_player",
		"store.set_player_index",
		"store.fix_player2_index",
		"store.set_status",
	}
	assert.Equal(t, want, rec.actions)

	h.Settle(nil)
	assert.Equal(t, want, rec.actions, "the pending single click is cancelled")

	snap := rec.Snapshot()
	assert.Equal(t, 2, snap.Queue.CurrentIndex())
	assert.Equal(t, playback.StatusPlaying, snap.Transport.Status)
	assert.InDelta(t, 0.6, snap.Transport.Channel(playback.Primary).Volume, 1e-9)
	assert.InDelta(t, 0.0, snap.Transport.Channel(playback.Secondary).Volume, 1e-9)
	assert.Equal(t, 2, snap.Transport.Channel(playback.Primary).Index)
	assert.Equal(t, 0, snap.Selection.Len())
}

func TestClick_SecondPressOnOtherRowIgnored(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.Send(testutil.Press(10, rowY(0)))
	h.Send(testutil.Press(10, rowY(2)))
	h.Settle(nil)

	assert.Equal(t, []string{"store.set_selected"}, rec.actions)
	assert.True(t, rec.Snapshot().Selection.Contains("a"))
}

func TestClick_StaleTimeoutIgnored(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)

	assert.Nil(t, h.Send(clickTimeoutMsg{Version: 42}))
	assert.Empty(t, rec.actions)
}

func TestClick_CtrlToggles(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.Send(testutil.Press(10, rowY(0), testutil.Ctrl))
	h.Settle(nil)
	h.Send(testutil.Press(10, rowY(2), testutil.Ctrl))
	h.Settle(nil)

	sel := rec.Snapshot().Selection
	assert.Equal(t, 2, sel.Len())
	assert.True(t, sel.Contains("a"))
	assert.True(t, sel.Contains("c"))

	h.Send(testutil.Press(10, rowY(0), testutil.Ctrl))
	h.Settle(nil)
	assert.False(t, rec.Snapshot().Selection.Contains("a"))
}

func TestClick_ShiftSelectsDisplayedRange(t *testing.T) {
	h, rec, _ := newPage(t,
		track("a", "Alpha one"),
		track("b", "Beta"),
		track("c", "Alpha two"),
	)
	h.SendKey("/")
	h.SendKey("alpha")
	h.Settle(nil)
	h.SendKey("enter")
	require.Equal(t, []string{"a", "c"}, idsOf(h.Model().Displayed()))

	h.Send(testutil.Press(10, rowY(0)))
	h.Settle(nil)
	h.Send(testutil.Press(10, rowY(1), testutil.Shift))
	h.Settle(nil)

	sel := rec.Snapshot().Selection
	assert.Equal(t, 2, sel.Len())
	assert.True(t, sel.Contains("a"))
	assert.True(t, sel.Contains("c"))
	assert.False(t, sel.Contains("b"), "hidden entries never join a range")
}

func TestKeys_SpaceAndToggle(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.SendKey(" ")
	assert.True(t, rec.Snapshot().Selection.Contains("a"))

	h.SendKey("j")
	h.SendKey("ctrl+@")
	sel := rec.Snapshot().Selection
	assert.True(t, sel.Contains("a"))
	assert.True(t, sel.Contains("b"))

	h.SendKey("esc")
	assert.Equal(t, 0, rec.Snapshot().Selection.Len())
}

func TestKeys_ShiftExtends(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c", "d")...)

	h.SendKey(" ")
	h.SendKey("shift+down")
	h.SendKey("shift+down")

	assert.Equal(t, 3, rec.Snapshot().Selection.Len())
	assert.False(t, rec.Snapshot().Selection.Contains("d"))
}

func TestKeys_EnterPlaysCursor(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b", "c")...)

	h.SendKey("j")
	h.SendKey("enter")

	snap := rec.Snapshot()
	assert.Equal(t, 1, snap.Queue.CurrentIndex())
	assert.Equal(t, playback.StatusPlaying, snap.Transport.Status)
}

func TestDispatch_ReportsFailure(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)
	rec.fail = errors.New("disk full")

	msgs := testutil.Messages(h.SendKey("R"))

	require.Len(t, msgs, 1)
	am, ok := msgs[0].(action.Msg)
	require.True(t, ok)
	failed, ok := am.Action.(Failed)
	require.True(t, ok)
	assert.Contains(t, failed.Message, "disk full")
	assert.Equal(t, []string{"store.cycle_repeat"}, rec.actions)
}

func TestDispatch_StopsAtFirstFailure(t *testing.T) {
	h, rec, _ := newPage(t, tracks("a", "b")...)
	rec.fail = errors.New("boom")

	h.Send(testutil.Press(10, rowY(1)))
	cmd := h.Send(testutil.Press(10, rowY(1)))

	assert.Equal(t, []string{"store.set_player_volume"}, rec.actions)
	require.NotNil(t, cmd)
	assert.IsType(t, action.Msg{}, cmd())
}
