// Package handler chains the root model's key handlers. The first handler
// that claims a key ends the chain.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key to the next handler.
var NotHandled = Result{}

// Handled claims the key, with an optional command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle the current key.
type Handler func() Result

// When runs h only while active holds.
func When(active bool, h Handler) Handler {
	return func() Result {
		if !active {
			return NotHandled
		}
		return h()
	}
}

// Chain runs handlers in order until one claims the key.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
