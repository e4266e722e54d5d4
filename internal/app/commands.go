package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/state"
)

// LoadQueueCmd reads the saved queue and appends the entries found under
// paths. A failure still delivers whatever could be loaded.
func LoadQueueCmd(st state.Interface, paths []string) tea.Cmd {
	return func() tea.Msg {
		q := playlist.NewQueue()
		saved, err := st.GetQueue()
		if err != nil {
			return QueueLoadedMsg{Queue: q, Op: errmsg.OpQueueLoad, Err: err}
		}
		if saved != nil {
			saved.ApplyTo(q)
		}

		if len(paths) == 0 {
			return QueueLoadedMsg{Queue: q}
		}
		tracks, err := playlist.CollectFromPaths(paths)
		if err != nil {
			return QueueLoadedMsg{Queue: q, Op: errmsg.OpFileLoad, Err: err}
		}
		q.Add(tracks...)
		return QueueLoadedMsg{Queue: q, Added: len(tracks)}
	}
}

// WatchStoreEvents returns a command that waits for the next store event.
// It listens on all subscription channels and converts events to tea.Msg.
// The handler re-arms it after every event.
func (m Model) WatchStoreEvents() tea.Cmd {
	sub := m.playbackSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StatusChanged:
			return StatusChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.SelectionChanged:
			return SelectionChangedMsg(e)
		case e := <-sub.SettingChanged:
			return SettingChangedMsg(e)
		case e := <-sub.IndexChanged:
			return IndexChangedMsg(e)
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}
