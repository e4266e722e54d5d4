// Package list provides a generic virtualized list whose rows may span
// several terminal lines.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone    Action = iota
	ActionPress          // Left button pressed on a row
	ActionMotion         // Pointer moved onto a different row with the button held
	ActionRelease        // Left button released
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // Row the action applies to (-1 if none)
	Ctrl   bool
	Shift  bool
}

// wheelStep is how many rows a wheel notch scrolls.
const wheelStep = 3

// Model is a generic scrollable list component.
// Its size is the body area; y coordinates passed to it are relative to the
// first body line. The parent renders rows using VisibleRange().
type Model[T any] struct {
	ui.Base
	items     []T
	cursor    cursor.Cursor
	rowHeight int
	pressed   int // row under the last press, -1 when the button is up
	hover     int // row under the pointer during a press
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{
		cursor:    cursor.New(margin),
		rowHeight: 1,
		pressed:   -1,
		hover:     -1,
	}
}

// SetItems replaces all items and clamps cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.ScrollBy(0, len(items), m.Rows())
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Item returns the item at index i.
func (m Model[T]) Item(i int) (T, bool) {
	if i < 0 || i >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[i], true
}

// SetRowHeight sets how many lines each row occupies (at least 1).
func (m *Model[T]) SetRowHeight(lines int) {
	m.rowHeight = max(lines, 1)
	m.cursor.EnsureVisible(len(m.items), m.Rows())
}

// RowHeight returns the lines per row.
func (m Model[T]) RowHeight() int {
	return m.rowHeight
}

// Rows returns how many whole rows fit in the viewport.
func (m Model[T]) Rows() int {
	return max(m.Height()/m.rowHeight, 1)
}

// Selected returns the item under the cursor and true, or zero value and
// false if empty.
func (m Model[T]) Selected() (T, bool) {
	return m.Item(m.cursor.Pos())
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.Rows())
}

// Move moves the cursor by delta rows.
func (m *Model[T]) Move(delta int) {
	m.cursor.Move(delta, len(m.items), m.Rows())
}

// MoveTo places the cursor on row i.
func (m *Model[T]) MoveTo(i int) {
	m.cursor.Jump(i, len(m.items), m.Rows())
}

// JumpStart moves the cursor to the first row.
func (m *Model[T]) JumpStart() {
	m.cursor.JumpStart()
}

// JumpEnd moves the cursor to the last row.
func (m *Model[T]) JumpEnd() {
	m.cursor.JumpEnd(len(m.items), m.Rows())
}

// PageDown moves the cursor one viewport down.
func (m *Model[T]) PageDown() {
	m.Move(m.Rows())
}

// PageUp moves the cursor one viewport up.
func (m *Model[T]) PageUp() {
	m.Move(-m.Rows())
}

// ScrollTop returns the scroll position in lines.
func (m Model[T]) ScrollTop() int {
	return m.cursor.Offset() * m.rowHeight
}

// SetScrollTop scrolls to the given position in lines. Positions between
// row boundaries round down to the row that contains them.
func (m *Model[T]) SetScrollTop(lines int) {
	m.cursor.ScrollTo(lines/m.rowHeight, len(m.items), m.Rows())
}

// RowAt returns the item index rendered on body line y, or -1.
func (m Model[T]) RowAt(y int) int {
	if y < 0 || y >= m.Rows()*m.rowHeight {
		return -1
	}
	idx := m.cursor.Offset() + y/m.rowHeight
	if idx >= len(m.items) {
		return -1
	}
	return idx
}

// Dragging reports whether the button is held since a press on a row.
func (m Model[T]) Dragging() bool {
	return m.pressed >= 0
}

// Update handles mouse input. y in msg must already be relative to the
// first body line. Wheel events scroll without moving the cursor.
func (m *Model[T]) Update(msg tea.Msg) Result {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return Result{Index: -1}
	}

	switch mouse.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonWheelUp:
		m.cursor.ScrollBy(-wheelStep, len(m.items), m.Rows())
		return Result{Index: -1}
	case tea.MouseButtonWheelDown:
		m.cursor.ScrollBy(wheelStep, len(m.items), m.Rows())
		return Result{Index: -1}
	}

	row := -1
	if m.Contains(mouse.X, mouse.Y) {
		row = m.RowAt(mouse.Y)
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || row < 0 {
			return Result{Index: -1}
		}
		m.pressed, m.hover = row, row
		m.cursor.Jump(row, len(m.items), m.Rows())
		return Result{Action: ActionPress, Index: row, Ctrl: mouse.Ctrl, Shift: mouse.Shift}

	case tea.MouseActionMotion:
		if m.pressed < 0 || row < 0 || row == m.hover {
			return Result{Index: -1}
		}
		m.hover = row
		return Result{Action: ActionMotion, Index: row}

	case tea.MouseActionRelease:
		if m.pressed < 0 {
			return Result{Index: -1}
		}
		m.pressed, m.hover = -1, -1
		return Result{Action: ActionRelease, Index: row}
	}

	return Result{Index: -1}
}
