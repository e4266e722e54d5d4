package nowplaying

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quaver/internal/icons"
	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/ui/containers"
	"github.com/llehouerou/quaver/internal/ui/headerbar"
	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

const (
	loadingText = "Loading queue…"
	emptyText   = "Queue is empty"
	noMatchText = "No matches"
	sortAsc     = " ▲"
	sortDesc    = " ▼"
)

// View renders the page at its full size.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	if m.store == nil {
		return containers.LoginPanel(containers.ThemeFrom(styles.T()), loadingText, m.Width(), m.Height())
	}

	lines := make([]string, 0, m.Height())
	lines = append(lines, strings.Split(m.header.View(m.info()), "\n")...)
	lines = append(lines, m.columnHeader())
	lines = append(lines, styles.T().S().Subtle.Render(render.Separator(m.Width())))
	lines = append(lines, m.body()...)
	return strings.Join(render.FitLines(lines, m.Width(), m.Height()), "\n")
}

// info summarizes the queue for the page header.
func (m Model) info() headerbar.Info {
	q := m.snap.Queue
	var total time.Duration
	for _, t := range q.Tracks() {
		total += t.Duration
	}
	column, order := q.Sort()
	return headerbar.Info{
		Total:     q.Len(),
		Shown:     m.list.Len(),
		Selected:  m.snap.Selection.Len(),
		Duration:  total,
		Shuffle:   q.Shuffle(),
		Repeat:    q.RepeatMode(),
		Sort:      column,
		SortOrder: order,
	}
}

func (m Model) columnHeader() string {
	column, order := m.snap.Queue.Sort()
	arrow := sortAsc
	if order == playlist.SortDesc {
		arrow = sortDesc
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", m.contentOffset()))
	x := m.contentOffset()
	for _, span := range m.columnSpans() {
		if span.x > x {
			sb.WriteString(strings.Repeat(" ", span.x-x))
		}
		label := span.column.Label
		if column != playlist.SortNone && sortColumnFor(span.column.ID) == column {
			label += arrow
		}
		if span.column.ID == "duration" {
			sb.WriteString(render.CellRight(label, span.width))
		} else {
			sb.WriteString(render.Cell(label, span.width))
		}
		x = span.x + span.width
	}
	line := render.Pad(render.Truncate(sb.String(), m.Width()), m.Width())
	return styles.T().S().Header.Render(line)
}

func (m Model) body() []string {
	height := m.list.Height()
	if m.list.Len() == 0 {
		text := emptyText
		if m.snap.Queue.Len() > 0 {
			text = noMatchText
		}
		msg := lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, styles.T().S().Muted.Render(text))
		return render.FitLines([]string{"", msg}, m.Width(), height)
	}

	spans := m.columnSpans()
	start, end := m.list.VisibleRange()
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		t, _ := m.list.Item(i)
		lines = append(lines, m.renderRow(t, i, spans)...)
	}
	return render.FitLines(lines, m.Width(), height)
}

// renderRow renders one entry over rowHeight lines. The first line holds
// the content; the rest carry the row background.
func (m Model) renderRow(t playlist.Track, idx int, spans []columnSpan) []string {
	style := m.rowStyle(t, idx)

	var sb strings.Builder
	sb.WriteString(m.rowPrefix(t))
	if m.showArt() {
		marker := ""
		if m.deps.Art.Has(t.AlbumID) {
			marker = icons.Art()
		}
		sb.WriteString(render.Cell(marker, artWidth))
	}
	x := m.contentOffset()
	for _, span := range spans {
		if span.x > x {
			sb.WriteString(strings.Repeat(" ", span.x-x))
		}
		sb.WriteString(m.cellText(t, span))
		x = span.x + span.width
	}

	rh := m.list.RowHeight()
	lines := make([]string, 0, rh)
	lines = append(lines, style.Render(render.Pad(render.Truncate(sb.String(), m.Width()), m.Width())))
	for range rh - 1 {
		lines = append(lines, style.Render(render.EmptyLine(m.Width())))
	}
	return lines
}

// rowPrefix is the drop marker while dragging over the row, or the
// playback status on the playing entry.
func (m Model) rowPrefix(t playlist.Track) string {
	sel := m.snap.Selection
	if sel.IsDragging() && sel.MouseOverID() == t.ID {
		return render.Cell(icons.Drop(), prefixWidth)
	}
	if m.isPlaying(t) {
		return render.Cell(icons.Status(m.snap.Transport.Status), prefixWidth)
	}
	return strings.Repeat(" ", prefixWidth)
}

func (m Model) cellText(t playlist.Track, span columnSpan) string {
	switch span.column.ID {
	case "index":
		if span.width < 2 {
			return render.Cell("", span.width)
		}
		return render.CellRight(strconv.Itoa(m.position[t.ID]+1), span.width-1) + " "
	case "title":
		return render.Cell(t.Title, span.width)
	case "artist":
		return render.Cell(t.Artist, span.width)
	case "album":
		return render.Cell(t.Album, span.width)
	case "duration":
		d := "--:--"
		if t.Duration > 0 {
			d = playlist.FormatDuration(t.Duration)
		}
		return render.CellRight(d, span.width)
	default:
		return render.Cell("", span.width)
	}
}

func (m Model) isPlaying(t playlist.Track) bool {
	cur := m.snap.Queue.Current()
	return cur != nil && cur.ID == t.ID
}

// rowStyle picks the row look. Selection background wins over the cursor
// background; text is sized for the configured font size.
func (m Model) rowStyle(t playlist.Track, idx int) lipgloss.Style {
	s := styles.T().S()
	style := s.Base
	sel := m.snap.Selection
	switch {
	case sel.IsDragging() && sel.MouseOverID() == t.ID:
		style = s.Drop
	case m.isPlaying(t):
		style = s.Playing
	}
	switch {
	case sel.Contains(t.ID):
		style = style.Background(styles.T().BgSelected)
	case m.IsFocused() && idx == m.list.SelectedIndex():
		style = style.Background(styles.T().BgCursor)
	}
	return styles.SizedText(style, m.deps.Settings.FontSize())
}
