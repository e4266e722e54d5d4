package nowplaying

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/ui"
)

// ScrollTopFor returns the scroll position, in lines, that shows the entry
// at currentIndex with a few rows of context above it.
func ScrollTopFor(rowHeight, currentIndex int) int {
	return max(0, rowHeight*currentIndex-ui.ScrollLeadRows*rowHeight)
}

// scheduleScroll follows the playing entry after the list has settled.
// Only the most recent schedule takes effect.
func (m *Model) scheduleScroll() tea.Cmd {
	m.scrollVersion++
	version := m.scrollVersion
	return tea.Tick(ui.ScrollDelay, func(time.Time) tea.Msg {
		return scrollMsg{Version: version}
	})
}

// followPlaying schedules a scroll when auto scroll is on.
func (m *Model) followPlaying() tea.Cmd {
	if !m.snap.ScrollWithCurrentSong {
		return nil
	}
	return m.scheduleScroll()
}

func (m *Model) handleScroll(msg scrollMsg) {
	if msg.Version != m.scrollVersion || m.snap.Queue == nil {
		return
	}
	idx := m.snap.Queue.CurrentIndex()
	if idx < 0 {
		return
	}
	m.list.SetScrollTop(ScrollTopFor(m.list.RowHeight(), idx))
}
