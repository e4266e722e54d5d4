package nowplaying

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/artcache"
	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/store"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/headerbar"
	"github.com/llehouerou/quaver/internal/ui/list"
)

// Update handles messages. Mouse coordinates must be relative to the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		if m.header.Searching() {
			return m, m.handleSearchKey(msg)
		}
		if m.store == nil {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.store == nil {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case clickTimeoutMsg:
		return m, m.handleClickTimeout(msg)

	case scrollMsg:
		m.handleScroll(msg)
		return m, m.warmVisible()

	case resetPlayerMsg:
		return m, m.dispatch(errmsg.OpPlaybackStart, store.ResetPlayer{})

	case artcache.WarmedMsg:
		m.warming = false
		return m, m.warmVisible()

	case action.Msg:
		if _, ok := msg.Action.(headerbar.QueryChanged); ok {
			m.refresh()
			m.rememberCursor()
			return m, m.warmVisible()
		}
		return m, nil

	case StoreChangedMsg, SettingsChangedMsg:
		var cmd tea.Cmd
		if m.refresh() {
			cmd = m.followPlaying()
		}
		return m, tea.Batch(cmd, m.warmVisible())
	}

	// Cursor blinks for the search box.
	if m.header.Searching() {
		var cmd tea.Cmd
		m.header, cmd = m.header.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch m.search.ResolveMsg(msg) { //nolint:exhaustive // other keys edit the query
	case keymap.ActionConfirmSearch:
		m.header.BlurSearch()
		return nil
	case keymap.ActionCancelSearch:
		return m.header.ClearSearch()
	}
	var cmd tea.Cmd
	m.header, cmd = m.header.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	a := m.keys.ResolveMsg(msg)
	if a == "" {
		return nil
	}

	switch a { //nolint:exhaustive // only queue actions resolve here
	case keymap.ActionMoveUp:
		m.list.Move(-1)
	case keymap.ActionMoveDown:
		m.list.Move(1)
	case keymap.ActionJumpStart:
		m.list.JumpStart()
	case keymap.ActionJumpEnd:
		m.list.JumpEnd()
	case keymap.ActionPageUp:
		m.list.PageUp()
	case keymap.ActionPageDown:
		m.list.PageDown()

	case keymap.ActionClick:
		return m.clickCursor(false, false)
	case keymap.ActionToggleSelect:
		return m.clickCursor(true, false)
	case keymap.ActionExtendUp:
		m.list.Move(-1)
		return m.clickCursor(false, true)
	case keymap.ActionExtendDown:
		m.list.Move(1)
		return m.clickCursor(false, true)
	case keymap.ActionClearSelect:
		if m.header.Query() != "" {
			return m.header.ClearSearch()
		}
		return m.dispatch(errmsg.OpQueueEdit, store.ClearSelected{})

	case keymap.ActionPlay:
		if t, ok := m.cursorTrack(); ok {
			return m.doubleClick(t)
		}
	case keymap.ActionMoveItemUp:
		return m.moveSelected(-1)
	case keymap.ActionMoveItemDown:
		return m.moveSelected(1)
	case keymap.ActionDelete:
		return m.removeSelected()
	case keymap.ActionUndo:
		return m.dispatch(errmsg.OpQueueEdit, store.Undo{})
	case keymap.ActionRedo:
		return m.dispatch(errmsg.OpQueueEdit, store.Redo{})

	case keymap.ActionSearch:
		return m.header.FocusSearch()
	case keymap.ActionClear:
		return m.clearQueue()
	case keymap.ActionShuffle:
		return m.shuffle()
	case keymap.ActionCycleRepeat:
		return m.dispatch(errmsg.OpQueueEdit, store.CycleRepeat{})
	case keymap.ActionAutoScroll:
		return m.toggleAutoScroll()
	case keymap.ActionCycleSort:
		return m.cycleSort()
	}

	m.rememberCursor()
	return m.warmVisible()
}

// clickCursor applies a click on the cursor row without waiting for a
// second press.
func (m *Model) clickCursor(ctrl, shift bool) tea.Cmd {
	m.rememberCursor()
	t, ok := m.cursorTrack()
	if !ok {
		return nil
	}
	return m.click(t, ctrl, shift)
}

// selectCursorIfEmpty makes the cursor row the selection when nothing is
// selected, so keyboard edits always have a target.
func (m *Model) selectCursorIfEmpty() error {
	if m.snap.Selection.Len() > 0 {
		return nil
	}
	t, ok := m.cursorTrack()
	if !ok {
		return nil
	}
	if err := m.store.Dispatch(store.SetSelected{Track: t}); err != nil {
		return err
	}
	m.refresh()
	return nil
}

// moveSelected moves the selected entries one position in the base order.
func (m *Model) moveSelected(delta int) tea.Cmd {
	if err := m.selectCursorIfEmpty(); err != nil {
		return failedCmd(errmsg.Format(errmsg.OpQueueEdit, err))
	}
	indices := make([]int, 0, m.snap.Selection.Len())
	for _, t := range m.snap.Selection.Entries() {
		if idx := m.snap.Queue.IndexOf(t.ID); idx >= 0 {
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return nil
	}
	if delta < 0 {
		return m.dispatch(errmsg.OpQueueEdit, store.MoveUp{Indices: indices})
	}
	return m.dispatch(errmsg.OpQueueEdit, store.MoveDown{Indices: indices})
}

func (m *Model) removeSelected() tea.Cmd {
	if err := m.selectCursorIfEmpty(); err != nil {
		return failedCmd(errmsg.Format(errmsg.OpQueueEdit, err))
	}
	return m.dispatch(errmsg.OpQueueEdit, store.RemoveSelected{})
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case msg.Y < headerbar.Height:
			return m.handleHeaderPress(msg.X, msg.Y)
		case msg.Y == headerRow:
			return m.sortByColumnAt(msg.X)
		}
	}

	body := msg
	body.Y -= chromeLines
	res := m.list.Update(body)
	switch res.Action {
	case list.ActionPress:
		m.rememberCursor()
		t, _ := m.list.Item(res.Index)
		m.pressed = t
		return m.pressRow(t, res.Ctrl, res.Shift)
	case list.ActionMotion:
		return m.dragOver(res.Index)
	case list.ActionRelease:
		return m.dragEnd()
	case list.ActionNone:
	}
	return m.warmVisible()
}

func (m *Model) handleHeaderPress(x, y int) tea.Cmd {
	switch m.header.HitTest(x, y) {
	case headerbar.TargetClear:
		return m.clearQueue()
	case headerbar.TargetShuffle:
		return m.shuffle()
	case headerbar.TargetAutoScroll:
		return m.toggleAutoScroll()
	case headerbar.TargetSearch:
		return m.header.FocusSearch()
	case headerbar.TargetNone:
	}
	return nil
}
