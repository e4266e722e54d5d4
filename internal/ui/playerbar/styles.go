package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/quaver/internal/ui/styles"
)

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func mutedStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func statusStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func modeStyle() lipgloss.Style {
	return styles.T().S().Warning
}

func errorStyle() lipgloss.Style {
	return styles.T().S().Error
}
