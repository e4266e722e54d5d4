package nowplaying

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/quaver/internal/artcache"
)

// warmVisible caches album art for the rows on screen. One warm runs at a
// time; the next starts when it reports back.
func (m *Model) warmVisible() tea.Cmd {
	if !m.showArt() || m.warming {
		return nil
	}
	start, end := m.list.VisibleRange()
	if start >= end {
		return nil
	}
	cmd := artcache.Warm(m.deps.Art, m.list.Items()[start:end])
	if cmd != nil {
		m.warming = true
	}
	return cmd
}
