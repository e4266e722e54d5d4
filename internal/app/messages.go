package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/playlist"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these, so they are handled
// separately in the Update() switch.

// StoreMessage is implemented by notifications from the store subscription.
type StoreMessage interface {
	tea.Msg
	storeMessage()
}

// LoadingMessage is implemented by messages related to startup.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// QueueLoadedMsg carries the queue read at startup.
type QueueLoadedMsg struct {
	Queue *playlist.PlayingQueue
	Added int // entries appended from the command line
	Op    errmsg.Op
	Err   error // the saved queue or a path could not be read
}

func (QueueLoadedMsg) loadingMessage() {}

// StatusChangedMsg mirrors playback.StatusChange.
type StatusChangedMsg playback.StatusChange

func (StatusChangedMsg) storeMessage() {}

// QueueChangedMsg mirrors playback.QueueChange.
type QueueChangedMsg playback.QueueChange

func (QueueChangedMsg) storeMessage() {}

// SelectionChangedMsg mirrors playback.SelectionChange.
type SelectionChangedMsg playback.SelectionChange

func (SelectionChangedMsg) storeMessage() {}

// SettingChangedMsg mirrors playback.SettingChange.
type SettingChangedMsg playback.SettingChange

func (SettingChangedMsg) storeMessage() {}

// IndexChangedMsg mirrors playback.IndexChange.
type IndexChangedMsg playback.IndexChange

func (IndexChangedMsg) storeMessage() {}

// StoreClosedMsg is sent when the subscription ends.
type StoreClosedMsg struct{}

func (StoreClosedMsg) storeMessage() {}
