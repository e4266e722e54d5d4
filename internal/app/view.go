package app

import (
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/playback"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/containers"
	"github.com/llehouerou/quaver/internal/ui/overlay"
	"github.com/llehouerou/quaver/internal/ui/playerbar"
	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

const (
	hintHeight   = 1
	footerHeight = ui.FooterHeight
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	view := m.Page.View() + "\n" + m.renderHints() + "\n" + m.renderPlayerBar()

	if m.Popup != nil {
		view = overlay.Compose(view, m.Popup.View(), m.Width)
	}
	return view
}

// renderHints draws the short key help under the page.
func (m Model) renderHints() string {
	bindings := keymap.HelpMap(keymap.ByContext(keymap.ContextGlobal, keymap.ContextQueue))
	return render.Pad(render.Truncate(m.Help.View(bindings), m.Width), m.Width)
}

func (m Model) renderPlayerBar() string {
	state := playerbar.State{Transport: playback.NewTransport()}
	if m.Store != nil {
		snap := m.Store.Snapshot()
		state = playerbar.NewState(snap.Queue, snap.Transport)
	}
	state.Message = m.ErrorMsg
	content := playerbar.Render(state, m.Width)
	return containers.MockFooter(containers.ThemeFrom(styles.T()), content, m.Width)
}
