package nowplaying

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/action"
)

// clickTimeoutCmd returns a command that sends clickTimeoutMsg after the
// double-click window.
func clickTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(ui.ClickDebounce, func(_ time.Time) tea.Msg {
		return clickTimeoutMsg{Version: version}
	})
}

// pressRow handles a button press on a row. The first press waits out the
// double-click window; a second press on the same row inside it is a
// double-click. Other presses inside the window are ignored.
func (m *Model) pressRow(t playlist.Track, ctrl, shift bool) tea.Cmd {
	if m.pending != nil {
		if m.pending.track.ID == t.ID {
			return m.doubleClick(t)
		}
		return nil
	}
	m.clickVersion++
	m.pending = &pendingClick{track: t, ctrl: ctrl, shift: shift}
	return clickTimeoutCmd(m.clickVersion)
}

// cancelClick drops the pending click; its timeout becomes stale.
func (m *Model) cancelClick() {
	m.clickVersion++
	m.pending = nil
}

func (m *Model) handleClickTimeout(msg clickTimeoutMsg) tea.Cmd {
	if msg.Version != m.clickVersion || m.pending == nil {
		return nil
	}
	p := m.pending
	m.pending = nil
	return m.click(p.track, p.ctrl, p.shift)
}

// click applies a single click: ctrl toggles the row, shift extends the
// selection over the displayed order, otherwise the row becomes the
// selection.
func (m *Model) click(t playlist.Track, ctrl, shift bool) tea.Cmd {
	switch {
	case ctrl:
		return m.dispatch(errmsg.OpQueueEdit, store.ToggleSelected{Track: t})
	case shift:
		return m.dispatch(errmsg.OpQueueEdit,
			store.SetRangeSelected{Track: t},
			store.ToggleRangeSelected{Projection: m.list.Items()},
		)
	default:
		return m.dispatch(errmsg.OpQueueEdit, store.SetSelected{Track: t})
	}
}

// doubleClick starts playback of t from a clean player state.
func (m *Model) doubleClick(t playlist.Track) tea.Cmd {
	m.cancelClick()
	m.deps.Logger.Debug("play entry", zap.String("id", t.ID), zap.String("title", t.Title))
	return m.dispatch(errmsg.OpPlaybackStart,
		store.SetPlayerVolume{Player: playback.Primary, Volume: m.snap.Volume},
		store.SetPlayerVolume{Player: playback.Secondary, Volume: 0},
		store.ClearSelected{},
		store.ResetPlayer{},
		store.SetPlayerIndex{Track: t},
		store.FixPlayer2Index{},
		store.SetStatus{Status: playback.StatusPlaying},
	)
}

// dispatch sends actions in order and stops at the first failure. The page
// is refreshed afterwards either way.
func (m *Model) dispatch(op errmsg.Op, actions ...action.Action) tea.Cmd {
	if m.store == nil {
		return nil
	}
	var cmd tea.Cmd
	for _, a := range actions {
		if err := m.store.Dispatch(a); err != nil {
			cmd = failedCmd(errmsg.Format(op, err))
			break
		}
	}
	if m.refresh() {
		cmd = tea.Batch(cmd, m.followPlaying())
	}
	return cmd
}
