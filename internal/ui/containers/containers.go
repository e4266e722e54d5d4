// Package containers provides the themed frames used around page content:
// the display options panel, the player bar footer and the small panel that
// frames the loading placeholder. They hold no state.
package containers

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quaver/internal/ui/styles"
)

// Size constraints, in terminal cells.
const (
	ConfigMinWidth = 50
	ConfigMaxWidth = 80
	ConfigMarginY  = 1
	LoginWidth     = 30
)

// Theme carries the colors a container is drawn with.
type Theme struct {
	Text        lipgloss.Color
	PanelBg     lipgloss.Color
	PlayerBarBg lipgloss.Color
	Border      lipgloss.Color
}

// ThemeFrom picks the container colors out of an application theme.
func ThemeFrom(t *styles.Theme) Theme {
	return Theme{
		Text:        t.FgBase,
		PanelBg:     t.BgBase,
		PlayerBarBg: t.BgPlayerBar,
		Border:      t.BorderFocus,
	}
}

// ConfigWidth returns the panel width for a screen: 80% of it, clamped to
// [ConfigMinWidth, ConfigMaxWidth] and never wider than the screen.
func ConfigWidth(screenWidth int) int {
	w := min(max(screenWidth*4/5, ConfigMinWidth), ConfigMaxWidth)
	return max(min(w, screenWidth), 0)
}

// ConfigPanel frames content in a padded panel centered horizontally, with a
// vertical margin above it. The result is screenHeight lines tall (or
// shorter when the panel does not fit), ready for overlay.Compose.
func ConfigPanel(th Theme, content string, screenWidth, screenHeight int) string {
	width := ConfigWidth(screenWidth)
	box := lipgloss.NewStyle().
		Foreground(th.Text).
		Background(th.PanelBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		BorderBackground(th.PanelBg).
		Padding(1, 2).
		Width(max(width-2, 0)).
		Render(content)

	lines := strings.Split(box, "\n")
	if maxLines := screenHeight - 2*ConfigMarginY; len(lines) > maxLines && maxLines > 0 {
		lines = lines[:maxLines]
	}
	padLeft := max((screenWidth-lipgloss.Width(box))/2, 0)

	var b strings.Builder
	for range ConfigMarginY {
		b.WriteString(strings.Repeat(" ", screenWidth))
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
	}
	return b.String()
}

// MockFooter draws the player bar: full width, player bar background and a
// top border line.
func MockFooter(th Theme, content string, width int) string {
	return lipgloss.NewStyle().
		Foreground(th.Text).
		Background(th.PlayerBarBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(th.Border).
		BorderBackground(th.PlayerBarBg).
		Width(width).
		MaxWidth(width).
		Render(content)
}

// LoginPanel frames content in a fixed width panel centered in the given
// area.
func LoginPanel(th Theme, content string, width, height int) string {
	box := lipgloss.NewStyle().
		Foreground(th.Text).
		Background(th.PanelBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		Width(LoginWidth - 2).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
