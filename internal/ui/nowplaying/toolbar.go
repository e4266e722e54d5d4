package nowplaying

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui"
)

// clearQueue empties the queue and pauses. The player is reset once the
// status change has been handled.
func (m *Model) clearQueue() tea.Cmd {
	cmd := m.dispatch(errmsg.OpQueueEdit,
		store.ClearPlayQueue{},
		store.SetStatus{Status: playback.StatusPaused},
	)
	reset := tea.Tick(ui.ResetPlayerDelay, func(time.Time) tea.Msg {
		return resetPlayerMsg{}
	})
	return tea.Batch(cmd, reset)
}

// shuffle turns shuffle on, or reshuffles when it already is.
func (m *Model) shuffle() tea.Cmd {
	if m.snap.Queue.Shuffle() {
		return m.dispatch(errmsg.OpQueueEdit, store.ShuffleInPlace{})
	}
	return m.dispatch(errmsg.OpQueueEdit, store.ToggleShuffle{})
}

// toggleAutoScroll flips and persists the follow-playback setting.
func (m *Model) toggleAutoScroll() tea.Cmd {
	on := !m.snap.ScrollWithCurrentSong
	if err := m.deps.Settings.SetScrollWithCurrentSong(on); err != nil {
		return failedCmd(errmsg.Format(errmsg.OpSettingSave, err))
	}
	cmd := m.dispatch(errmsg.OpSettingSave, store.SetPlaybackSetting{
		Key:   store.SettingScrollWithCurrentSong,
		Value: on,
	})
	if on {
		cmd = tea.Batch(cmd, m.scheduleScroll())
	}
	return cmd
}

// sortCycle is the order the sort key steps through.
var sortCycle = []playlist.SortColumn{
	playlist.SortNone,
	playlist.SortTitle,
	playlist.SortArtist,
	playlist.SortAlbum,
	playlist.SortDuration,
}

// cycleSort steps to the next sort: each column ascending then descending,
// then back to the queue order.
func (m *Model) cycleSort() tea.Cmd {
	column, order := m.snap.Queue.Sort()
	if column != playlist.SortNone && order == playlist.SortAsc {
		return m.sortBy(column, playlist.SortDesc)
	}
	next := playlist.SortNone
	for i, c := range sortCycle {
		if c == column {
			next = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	return m.sortBy(next, playlist.SortAsc)
}

// sortByColumnAt sorts by the column whose header is at x. Clicking the
// active column reverses it, then clears the sort.
func (m *Model) sortByColumnAt(x int) tea.Cmd {
	span, ok := m.columnAt(x)
	if !ok {
		return nil
	}
	target := sortColumnFor(span.column.ID)
	column, order := m.snap.Queue.Sort()
	switch {
	case target == playlist.SortNone:
		return m.sortBy(playlist.SortNone, playlist.SortAsc)
	case target != column:
		return m.sortBy(target, playlist.SortAsc)
	case order == playlist.SortAsc:
		return m.sortBy(target, playlist.SortDesc)
	default:
		return m.sortBy(playlist.SortNone, playlist.SortAsc)
	}
}

func (m *Model) sortBy(column playlist.SortColumn, order playlist.SortOrder) tea.Cmd {
	return m.dispatch(errmsg.OpQueueEdit, store.SortQueue{Column: column, Order: order})
}

// sortColumnFor maps a column ID to the sort it selects.
func sortColumnFor(id string) playlist.SortColumn {
	switch id {
	case "title":
		return playlist.SortTitle
	case "artist":
		return playlist.SortArtist
	case "album":
		return playlist.SortAlbum
	case "duration":
		return playlist.SortDuration
	default:
		return playlist.SortNone
	}
}
