// Package popup provides modal dialogs drawn over the page.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quaver/internal/ui/render"
	"github.com/llehouerou/quaver/internal/ui/styles"
)

// Style configures the dialog appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the theme's dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.BorderFocus,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a centered box with a title, content and a footer hint.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width, 0 fits the content
	Style   Style
}

// New creates a dialog with the default style.
func New() *Dialog {
	return &Dialog{Style: DefaultStyle()}
}

// Render returns the dialog centered on a screen of the given size.
func (d *Dialog) Render(screenWidth, screenHeight int) string {
	inner := d.Width
	if inner == 0 {
		inner = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	inner = max(min(inner, screenWidth-4), 1)

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, centerLine(d.Style.TitleStyle.Render(d.Title), inner), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.Pad(render.Truncate(line, inner), inner))
	}
	if d.Footer != "" {
		lines = append(lines, "", centerLine(d.Style.FooterStyle.Render(d.Footer), inner))
	}

	box := lipgloss.NewStyle().
		Border(d.Style.Border).
		BorderForeground(d.Style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return Center(box, screenWidth, screenHeight)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenWidth, screenHeight int) string {
	return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, content)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
