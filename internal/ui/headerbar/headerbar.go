// Package headerbar renders the page header of the now-playing screen:
// title, toolbar buttons, the auto-scroll checkbox and the search box.
package headerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/quaver/internal/icons"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/ui"
	"github.com/llehouerou/quaver/internal/ui/action"
	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

// Height is the fixed height of the header: title line and toolbar line.
const Height = 2

// Title is the page title.
const Title = "Now Playing"

const (
	labelClear      = "Clear queue"
	labelShuffle    = "Shuffle"
	labelAutoScroll = "Auto scroll"
	searchPrompt    = "/ "
	maxSearchWidth  = 32
	minSearchWidth  = 12
)

// Target identifies a clickable header element.
type Target int

const (
	TargetNone Target = iota
	TargetClear
	TargetShuffle
	TargetAutoScroll
	TargetSearch
)

// Info is the queue summary shown in the title line.
type Info struct {
	Total     int
	Shown     int // entries left by the search filter
	Selected  int
	Duration  time.Duration
	Shuffle   bool
	Repeat    playlist.RepeatMode
	Sort      playlist.SortColumn
	SortOrder playlist.SortOrder
}

// QueryChanged is emitted whenever the search text changes.
type QueryChanged struct {
	Query string
}

// ActionType implements action.Action.
func (QueryChanged) ActionType() string { return "headerbar.query_changed" }

// ActionMsg creates an action.Msg for a headerbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "headerbar", Action: a}
}

// Model is the header state. Only the search box has state of its own;
// the auto-scroll flag mirrors the persisted setting.
type Model struct {
	ui.Base
	search     textinput.Model
	autoScroll bool
}

// New creates a header with an empty search box.
func New() Model {
	ti := textinput.New()
	ti.Prompt = searchPrompt
	ti.Placeholder = "Search queue"
	ti.CharLimit = 128
	ti.PromptStyle = styles.T().S().Muted
	ti.PlaceholderStyle = styles.T().S().Subtle
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Model{search: ti}
}

// SetAutoScroll sets the checkbox state.
func (m *Model) SetAutoScroll(on bool) {
	m.autoScroll = on
}

// AutoScroll returns the checkbox state.
func (m Model) AutoScroll() bool {
	return m.autoScroll
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.search.Value()
}

// Searching reports whether the search box has keyboard focus.
func (m Model) Searching() bool {
	return m.search.Focused()
}

// FocusSearch gives the search box keyboard focus.
func (m *Model) FocusSearch() tea.Cmd {
	return m.search.Focus()
}

// BlurSearch returns keyboard focus to the list, keeping the query.
func (m *Model) BlurSearch() {
	m.search.Blur()
}

// ClearSearch empties and blurs the search box.
func (m *Model) ClearSearch() tea.Cmd {
	m.search.Blur()
	if m.search.Value() == "" {
		return nil
	}
	m.search.SetValue("")
	return queryChanged("")
}

// Update forwards input to the search box while it is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.search.Focused() {
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, queryChanged(after))
	}
	return m, cmd
}

func queryChanged(q string) tea.Cmd {
	return action.Cmd("headerbar", QueryChanged{Query: q})
}

// layout holds the toolbar column spans, [start, end).
type layout struct {
	clear, shuffle, autoScroll, search [2]int
}

func (m Model) layout() layout {
	var l layout
	x := 0
	l.clear = [2]int{x, x + lipgloss.Width(labelClear) + 2}
	x = l.clear[1] + 1
	l.shuffle = [2]int{x, x + lipgloss.Width(labelShuffle) + 2}
	x = l.shuffle[1] + 2
	l.autoScroll = [2]int{x, x + lipgloss.Width(m.checkbox())}
	x = l.autoScroll[1] + 2

	searchWidth := min(maxSearchWidth, m.Width()-x)
	if searchWidth >= minSearchWidth {
		l.search = [2]int{m.Width() - searchWidth, m.Width()}
	}
	return l
}

func (m Model) checkbox() string {
	return icons.Checkbox(m.autoScroll) + " " + labelAutoScroll
}

// HitTest returns the element at (x, y), relative to the header.
func (m Model) HitTest(x, y int) Target {
	if y != 1 || !m.Contains(x, y) {
		return TargetNone
	}
	l := m.layout()
	within := func(span [2]int) bool { return x >= span[0] && x < span[1] }
	switch {
	case within(l.clear):
		return TargetClear
	case within(l.shuffle):
		return TargetShuffle
	case within(l.autoScroll):
		return TargetAutoScroll
	case l.search[1] > 0 && within(l.search):
		return TargetSearch
	}
	return TargetNone
}

// View renders the two header lines.
func (m Model) View(info Info) string {
	if m.Width() == 0 {
		return ""
	}
	return m.titleLine(info) + "\n" + m.toolbarLine()
}

func (m Model) titleLine(info Info) string {
	t := styles.T()
	title := styles.Gradient(Title, t.Primary, t.Secondary, lipgloss.NewStyle().Bold(true))
	return render.Row(title+"  "+t.S().Muted.Render(Summary(info)), modes(info), m.Width())
}

func (m Model) toolbarLine() string {
	t := styles.T()
	l := m.layout()

	checkStyle := t.S().Muted
	if m.autoScroll {
		checkStyle = t.S().Success
	}

	var b strings.Builder
	b.WriteString(t.S().Button.Render(labelClear))
	b.WriteString(" ")
	b.WriteString(t.S().Button.Render(labelShuffle))
	b.WriteString("  ")
	b.WriteString(checkStyle.Render(m.checkbox()))

	line := b.String()
	if l.search[1] == 0 {
		return render.Pad(render.Truncate(line, m.Width()), m.Width())
	}

	searchWidth := l.search[1] - l.search[0]
	search := m.search
	search.Width = max(searchWidth-lipgloss.Width(searchPrompt)-1, 1)
	box := render.Pad(render.Truncate(search.View(), searchWidth), searchWidth)
	return render.Pad(line, l.search[0]) + box
}

// Summary describes the queue size, e.g. "1,204 tracks · 3 hours" or
// "12 of 1,204 tracks" while filtering.
func Summary(info Info) string {
	count := humanize.Comma(int64(info.Total)) + " " + plural(info.Total, "track")
	if info.Shown != info.Total {
		count = humanize.Comma(int64(info.Shown)) + " of " + count
	}
	parts := []string{count}
	if info.Duration > 0 {
		parts = append(parts, formatTotal(info.Duration))
	}
	if info.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", info.Selected))
	}
	return strings.Join(parts, " · ")
}

func formatTotal(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%d min", int(d.Minutes()))
	}
	h := int(d.Hours())
	return fmt.Sprintf("%d h %02d min", h, int(d.Minutes())%60)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// modes renders the shuffle, repeat and sort indicators.
func modes(info Info) string {
	var parts []string
	if info.Sort != playlist.SortNone {
		arrow := "↑"
		if info.SortOrder == playlist.SortDesc {
			arrow = "↓"
		}
		parts = append(parts, info.Sort.String()+arrow)
	}
	if info.Shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch info.Repeat {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.T().S().Playing.Render(strings.Join(parts, "  "))
}
