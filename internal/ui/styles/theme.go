package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - playing entry, active states
	Secondary lipgloss.Color // Gold/orange - title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase      lipgloss.Color // Page background
	BgCursor    lipgloss.Color // Cursor highlight
	BgSelected  lipgloss.Color // Selected rows
	BgPlayerBar lipgloss.Color // Footer player bar

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders
	DropTarget  lipgloss.Color // Insertion marker while dragging

	// Status colors
	Success lipgloss.Color // Green - checked boxes
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow/orange - warnings

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Playing  lipgloss.Style // Currently playing entry
	Cursor   lipgloss.Style // Cursor background highlight
	Selected lipgloss.Style // Selected row background
	Drop     lipgloss.Style // Drop target marker
	Header   lipgloss.Style // Column header row
	Button   lipgloss.Style // Toolbar button
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:      lipgloss.Color("#1a1a1a"),
	BgCursor:    lipgloss.Color("#303030"),
	BgSelected:  lipgloss.Color("#3b3360"),
	BgPlayerBar: lipgloss.Color("#242424"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),
	DropTarget:  lipgloss.Color("#f1a208"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Selected: lipgloss.NewStyle().
			Background(t.BgSelected).
			Foreground(t.FgBase),
		Drop: lipgloss.NewStyle().Foreground(t.DropTarget).Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgCursor).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Text sizes are approximated with emphasis: small sizes render faint,
// large sizes bold.
const (
	SmallTextMax = 11
	LargeTextMin = 15
)

// SizedText returns style adjusted for the configured font size.
func SizedText(style lipgloss.Style, fontSize int) lipgloss.Style {
	switch {
	case fontSize <= SmallTextMax:
		return style.Faint(true)
	case fontSize >= LargeTextMin:
		return style.Bold(true)
	default:
		return style
	}
}
