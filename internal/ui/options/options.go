// Package options is the display options panel: row height, font size,
// auto scroll, album art caching and volume. Every change is saved at once.
package options

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/errmsg"
	"github.com/llehouerou/quaver/internal/icons"
	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/state"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/containers"
	"github.com/llehouerou/quaver/internal/ui/popup"
	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Field is one editable option.
type Field int

const (
	FieldRowHeight Field = iota
	FieldFontSize
	FieldAutoScroll
	FieldCacheImages
	FieldVolume
	fieldCount
)

// String returns the option label.
func (f Field) String() string {
	switch f {
	case FieldRowHeight:
		return "Row height"
	case FieldFontSize:
		return "Font size"
	case FieldAutoScroll:
		return "Auto scroll"
	case FieldCacheImages:
		return "Cache album art"
	case FieldVolume:
		return "Volume"
	case fieldCount:
	}
	return "Unknown"
}

const (
	source     = "options"
	volumeStep = 0.05
	labelWidth = 18
)

// Changed reports that a field was saved.
type Changed struct {
	Field Field
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "options.changed" }

// Failed reports that a field could not be saved.
type Failed struct {
	Message string
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "options.failed" }

// Close signals the panel should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "options.close" }

// ActionMsg creates an action.Msg for an options action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: source, Action: a}
}

func emit(a action.Action) tea.Cmd {
	return action.Cmd(source, a)
}

// Model is the options panel.
type Model struct {
	ui.Base
	settings state.Settings
	keys     *keymap.Resolver
	field    Field
}

// New creates a panel editing settings.
func New(settings state.Settings) Model {
	return Model{
		settings: settings,
		keys:     keymap.NewResolver(keymap.ByContext(keymap.ContextConfig)),
	}
}

// Field returns the focused option.
func (m Model) Field() Field {
	return m.field
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.ResolveMsg(keyMsg) { //nolint:exhaustive // only panel actions resolve here
	case keymap.ActionPrevField:
		m.field = (m.field + fieldCount - 1) % fieldCount
	case keymap.ActionNextField:
		m.field = (m.field + 1) % fieldCount
	case keymap.ActionDecrease:
		return m, m.adjust(-1)
	case keymap.ActionIncrease:
		return m, m.adjust(1)
	case keymap.ActionClose:
		return m, emit(Close{})
	}
	return m, nil
}

// adjust steps the focused field by dir and saves it. Toggles flip in
// either direction.
func (m *Model) adjust(dir int) tea.Cmd {
	s := m.settings
	var err error
	switch m.field {
	case FieldRowHeight:
		next := clamp(s.RowHeight()+dir, state.MinRowHeight, state.MaxRowHeight)
		if next == s.RowHeight() {
			return nil
		}
		err = s.SetRowHeight(next)
	case FieldFontSize:
		next := clamp(s.FontSize()+dir, state.MinFontSize, state.MaxFontSize)
		if next == s.FontSize() {
			return nil
		}
		err = s.SetFontSize(next)
	case FieldAutoScroll:
		err = s.SetScrollWithCurrentSong(!s.ScrollWithCurrentSong())
	case FieldCacheImages:
		err = s.SetCacheImages(!s.CacheImages())
	case FieldVolume:
		next := min(max(s.Volume()+float64(dir)*volumeStep, 0), 1)
		if next == s.Volume() {
			return nil
		}
		err = s.SetVolume(next)
	case fieldCount:
		return nil
	}
	if err != nil {
		return emit(Failed{Message: errmsg.Format(errmsg.OpSettingSave, err)})
	}
	return emit(Changed{Field: m.field})
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	lines := []string{t.S().Title.Render("Display Options"), ""}
	for f := range fieldCount {
		line := render.Pad(f.String(), labelWidth) + m.value(f)
		if f == m.field {
			line = t.S().Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", t.S().Subtle.Render("j/k move · h/l change · esc close"))

	return containers.ConfigPanel(containers.ThemeFrom(t), strings.Join(lines, "\n"), m.Width(), m.Height())
}

func (m Model) value(f Field) string {
	s := m.settings
	switch f {
	case FieldRowHeight:
		return fmt.Sprintf("◀ %d ▶", s.RowHeight())
	case FieldFontSize:
		return fmt.Sprintf("◀ %d ▶", s.FontSize())
	case FieldAutoScroll:
		return icons.Checkbox(s.ScrollWithCurrentSong())
	case FieldCacheImages:
		return icons.Checkbox(s.CacheImages())
	case FieldVolume:
		return fmt.Sprintf("◀ %3.0f%% ▶", s.Volume()*100)
	case fieldCount:
	}
	return ""
}
