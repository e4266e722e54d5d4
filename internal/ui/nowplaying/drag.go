package nowplaying

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
)

// dragOver handles the pointer entering row idx with the button held. The
// first motion turns the press into a drag; the pressed row joins the drag
// when it was not already selected.
func (m *Model) dragOver(idx int) tea.Cmd {
	over, ok := m.list.Item(idx)
	if !ok {
		return nil
	}
	var actions []action.Action
	if !m.snap.Selection.IsDragging() {
		m.cancelClick()
		if m.pressed.ID != "" && !m.snap.Selection.Contains(m.pressed.ID) {
			actions = append(actions, store.SetSelected{Track: m.pressed})
		}
		actions = append(actions, store.SetIsDragging{Dragging: true})
	}
	actions = append(actions, store.SetMouseOver{ID: over.ID})
	return m.dispatch(errmsg.OpQueueEdit, actions...)
}

// dragEnd drops the selected entries before the entry under the pointer.
func (m *Model) dragEnd() tea.Cmd {
	sel := m.snap.Selection
	if !sel.IsDragging() {
		return nil
	}
	actions := []action.Action{}
	if target := sel.MouseOverID(); target != "" && !sel.Contains(target) {
		actions = append(actions, store.MoveToIndex{Entries: sel.Entries(), BeforeID: target})
	}
	actions = append(actions, store.SetIsDragging{Dragging: false}, store.SetMouseOver{ID: ""})
	if m.snap.Transport.PrimaryDriving() {
		actions = append(actions, store.FixPlayer2Index{})
	}
	return m.dispatch(errmsg.OpQueueEdit, actions...)
}
