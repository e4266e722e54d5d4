package nowplaying

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/ui/action"
)

// StoreChangedMsg tells the page the store changed outside of it.
type StoreChangedMsg struct{}

// SettingsChangedMsg tells the page display settings were edited.
type SettingsChangedMsg struct{}

// clickTimeoutMsg ends the double-click window of the click with Version.
type clickTimeoutMsg struct {
	Version int
}

// scrollMsg follows the playing entry once the list has settled.
type scrollMsg struct {
	Version int
}

// resetPlayerMsg resets the player some time after the queue was cleared.
type resetPlayerMsg struct{}

// Failed reports an operation error to show to the user.
type Failed struct {
	Message string
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "nowplaying.failed" }

// ActionMsg creates an action.Msg for a nowplaying action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "nowplaying", Action: a}
}

func failedCmd(message string) tea.Cmd {
	return action.Cmd("nowplaying", Failed{Message: message})
}
