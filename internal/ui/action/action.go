// Package action is the envelope UI components use to report what happened
// to their parent. Parents switch on the concrete Action type.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks its parent to handle.
// ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action up to the root model.
type Msg struct {
	Source string // reporting component: "nowplaying", "headerbar", "options", "helpbindings"
	Action Action
}

// Compile-time check that Msg is a tea.Msg.
var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
