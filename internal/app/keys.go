package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/app/handler"
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/ui/helpbindings"
	"github.com/llehouerou/quaver/internal/ui/options"
	"github.com/llehouerou/quaver/internal/ui/popup"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ErrorMsg = ""

	handled, cmd := handler.Chain(
		handler.When(m.Popup != nil, func() handler.Result { return m.handlePopupKey(msg) }),
		handler.When(!m.Page.Searching() || msg.Type == tea.KeyCtrlC,
			func() handler.Result { return m.handleGlobalKey(msg) }),
	)
	if handled {
		return m, cmd
	}

	m.Page, cmd = m.Page.Update(msg)
	return m, cmd
}

// handlePopupKey gives every key to the open popup.
func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	var cmd tea.Cmd
	m.Popup, cmd = m.Popup.Update(msg)
	return handler.Handled(cmd)
}

// handleGlobalKey runs application keys. The search box keeps all but
// ctrl+c while it is focused.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) handler.Result {
	switch m.keys.ResolveMsg(msg) { //nolint:exhaustive // only global actions resolve here
	case keymap.ActionQuit:
		m.Shutdown()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		h := helpbindings.New()
		return handler.Handled(m.openPopup(&h))
	case keymap.ActionConfig:
		o := options.New(m.StateMgr)
		return handler.Handled(m.openPopup(&o))
	}
	return handler.NotHandled
}

// openPopup shows p over the page.
func (m *Model) openPopup(p popup.Popup) tea.Cmd {
	p.SetSize(m.Width, m.Height)
	m.Popup = p
	return p.Init()
}

// closePopup returns the keyboard to the page.
func (m *Model) closePopup() {
	m.Popup = nil
}
