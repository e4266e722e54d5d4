package nowplaying

import (
	"github.com/llehouerou/quaver/internal/state"
)

const (
	prefixWidth = 2 // status or drop marker
	artWidth    = 2 // cached art marker
	columnGap   = 1
)

// columnSpan is a laid out column: where it starts and how wide it is.
type columnSpan struct {
	column state.Column
	x      int
	width  int
}

// layoutColumns places columns on a line of the given width, starting at
// offset. Fixed widths are honored first; columns with width 0 share what
// is left, at least one cell each. Columns past the edge are dropped.
func layoutColumns(columns []state.Column, offset, width int) []columnSpan {
	if len(columns) == 0 {
		return nil
	}
	fixed, flexible := 0, 0
	for _, c := range columns {
		if c.Width > 0 {
			fixed += c.Width
		} else {
			flexible++
		}
	}
	gaps := (len(columns) - 1) * columnGap
	remaining := max(width-offset-fixed-gaps, 0)
	share, extra := 0, 0
	if flexible > 0 {
		share = max(remaining/flexible, 1)
		extra = max(remaining-share*flexible, 0)
	}

	spans := make([]columnSpan, 0, len(columns))
	x := offset
	for _, c := range columns {
		w := c.Width
		if w <= 0 {
			w = share + extra
			extra = 0
		}
		if x >= width {
			break
		}
		w = min(w, width-x)
		spans = append(spans, columnSpan{column: c, x: x, width: w})
		x += w + columnGap
	}
	return spans
}

// contentOffset is where the first column starts.
func (m Model) contentOffset() int {
	if m.showArt() {
		return prefixWidth + artWidth
	}
	return prefixWidth
}

func (m Model) columnSpans() []columnSpan {
	return layoutColumns(m.deps.Settings.Columns(), m.contentOffset(), m.Width())
}

// columnAt returns the column under x.
func (m Model) columnAt(x int) (columnSpan, bool) {
	for _, s := range m.columnSpans() {
		if x >= s.x && x < s.x+s.width {
			return s, true
		}
	}
	return columnSpan{}, false
}

// showArt reports whether rows carry the cached art marker.
func (m Model) showArt() bool {
	return m.deps.Art != nil && m.deps.Settings.CacheImages()
}
