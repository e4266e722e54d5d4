// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Contexts group bindings by the component that handles them.
const (
	ContextGlobal = "global"
	ContextQueue  = "queue"
	ContextSearch = "search"
	ContextConfig = "config"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Key converts the binding for use with bubbles/key and bubbles/help.
// The first key is the one shown in help.
func (b Binding) Key() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = b.Keys[0]
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey, b.Description),
	)
}

// Bindings contains all key bindings. bubbletea reports ctrl+space as ctrl+@.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionConfig, []string{"o"}, "Display options", ContextGlobal},

	// Queue list
	{ActionMoveDown, []string{"j", "down"}, "Cursor down", ContextQueue},
	{ActionMoveUp, []string{"k", "up"}, "Cursor up", ContextQueue},
	{ActionJumpStart, []string{"g", "home"}, "First entry", ContextQueue},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", ContextQueue},
	{ActionPageUp, []string{"pgup"}, "Page up", ContextQueue},
	{ActionPageDown, []string{"pgdown"}, "Page down", ContextQueue},
	{ActionClick, []string{" "}, "Select entry", ContextQueue},
	{ActionToggleSelect, []string{"x", "ctrl+@"}, "Toggle selection", ContextQueue},
	{ActionExtendUp, []string{"shift+up"}, "Extend selection up", ContextQueue},
	{ActionExtendDown, []string{"shift+down"}, "Extend selection down", ContextQueue},
	{ActionClearSelect, []string{"esc"}, "Clear search/selection", ContextQueue},
	{ActionPlay, []string{"enter"}, "Play entry", ContextQueue},
	{ActionMoveItemUp, []string{"K"}, "Move selected up", ContextQueue},
	{ActionMoveItemDown, []string{"J"}, "Move selected down", ContextQueue},
	{ActionSearch, []string{"/"}, "Search", ContextQueue},
	{ActionClear, []string{"c"}, "Clear queue", ContextQueue},
	{ActionShuffle, []string{"S"}, "Shuffle", ContextQueue},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat", ContextQueue},
	{ActionAutoScroll, []string{"a"}, "Toggle auto scroll", ContextQueue},
	{ActionCycleSort, []string{"s"}, "Cycle sort", ContextQueue},
	{ActionDelete, []string{"d", "delete"}, "Remove selected", ContextQueue},
	{ActionUndo, []string{"ctrl+z"}, "Undo", ContextQueue},
	{ActionRedo, []string{"ctrl+y"}, "Redo", ContextQueue},

	// Search box
	{ActionConfirmSearch, []string{"enter"}, "Keep filter", ContextSearch},
	{ActionCancelSearch, []string{"esc"}, "Clear filter", ContextSearch},

	// Display options panel
	{ActionPrevField, []string{"k", "up"}, "Previous option", ContextConfig},
	{ActionNextField, []string{"j", "down"}, "Next option", ContextConfig},
	{ActionDecrease, []string{"h", "left", "-"}, "Decrease/toggle", ContextConfig},
	{ActionIncrease, []string{"l", "right", "+", " "}, "Increase/toggle", ContextConfig},
	{ActionClose, []string{"esc", "o"}, "Close", ContextConfig},
}

// ByContext returns key bindings belonging to any of the given contexts.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}

// HelpMap adapts a binding set to bubbles/help.
type HelpMap []Binding

// ShortHelp returns the bindings shown in the one-line footer help.
func (h HelpMap) ShortHelp() []key.Binding {
	short := []Action{ActionPlay, ActionSearch, ActionShuffle, ActionClear, ActionConfig, ActionHelp, ActionQuit}
	var result []key.Binding
	for _, a := range short {
		for _, b := range h {
			if b.Action == a {
				result = append(result, b.Key())
				break
			}
		}
	}
	return result
}

// FullHelp returns every binding, one column per context.
func (h HelpMap) FullHelp() [][]key.Binding {
	var columns [][]key.Binding
	index := map[string]int{}
	for _, b := range h {
		i, ok := index[b.Context]
		if !ok {
			i = len(columns)
			index[b.Context] = i
			columns = append(columns, nil)
		}
		columns[i] = append(columns[i], b.Key())
	}
	return columns
}
