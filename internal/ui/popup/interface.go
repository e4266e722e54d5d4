package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the page. While one is open it
// receives every key.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup, already framed and placed for the screen.
	View() string

	// SetSize sets the screen dimensions the popup is placed in.
	SetSize(width, height int)
}
