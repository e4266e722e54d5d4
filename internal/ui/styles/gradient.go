package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient from one color to
// the other. base supplies every other attribute (bold, background).
func Gradient(text string, from, to lipgloss.Color, base lipgloss.Style) string {
	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(base.Foreground(lipgloss.Color(colorToHex(colors[i]))).Render(cluster))
	}
	return b.String()
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{toColor(from)}
	}

	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1))
	}
	return colors
}

// toColor converts a hex lipgloss.Color; ANSI palette colors become gray.
func toColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Clamped().Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
