// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionConfig Action = "config"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection actions
	ActionClick        Action = "click"         // space - same as a mouse click
	ActionToggleSelect Action = "toggle_select" // x, ctrl+space
	ActionExtendUp     Action = "extend_up"     // shift+up
	ActionExtendDown   Action = "extend_down"   // shift+down
	ActionClearSelect  Action = "clear_select"  // esc

	// Queue actions
	ActionPlay          Action = "play"           // enter - same as a double-click
	ActionMoveItemUp    Action = "move_item_up"   // K
	ActionMoveItemDown  Action = "move_item_down" // J
	ActionSearch        Action = "search"
	ActionClear         Action = "clear"
	ActionShuffle       Action = "shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionAutoScroll    Action = "auto_scroll"
	ActionCycleSort     Action = "cycle_sort"
	ActionDelete        Action = "delete"
	ActionUndo          Action = "undo"
	ActionRedo          Action = "redo"
	ActionConfirmSearch Action = "confirm_search"
	ActionCancelSearch  Action = "cancel_search"

	// Config panel actions
	ActionPrevField Action = "prev_field"
	ActionNextField Action = "next_field"
	ActionDecrease  Action = "decrease"
	ActionIncrease  Action = "increase"
	ActionClose     Action = "close"
)
