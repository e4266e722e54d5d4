// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quaver/internal/keymap"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/popup"
	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextQueue,
	keymap.ContextSearch,
	keymap.ContextConfig,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextQueue:  "Queue",
	keymap.ContextSearch: "Search",
	keymap.ContextConfig: "Display Options",
}

// Close asks the parent to close the popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }

// ActionMsg creates an action.Msg for a helpbindings action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}

// chrome is the space taken by the title, footer and border.
const chrome = 8

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup listing every context.
func New() Model {
	m := Model{}
	m.SetContexts(categoryOrder)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
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

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd("helpbindings", Close{})
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	lines := m.contentLines()
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	d := popup.New()
	d.Title = "Help"
	d.Content = strings.Join(lines[start:end], "\n")
	d.Footer = m.footer()
	d.Width = maxWidth(lines)
	return d.Render(m.Width(), m.Height())
}

func (m Model) contentLines() []string {
	s := styles.T().S()
	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, s.Title.Render(label), s.Subtle.Render(render.Separator(keyWidth+15)))
			current = b.Context
		}
		lines = append(lines, s.Playing.Render(render.Pad(keyLabel(b), keyWidth))+"  "+s.Base.Render(b.Description))
	}
	return lines
}

// keyLabel joins a binding's keys for display; the space key is spelled out.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}

func (m Model) footer() string {
	if len(m.contentLines()) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}
