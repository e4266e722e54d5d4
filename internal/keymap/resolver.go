package keymap

import tea "github.com/charmbracelet/bubbletea"

// Resolver maps key presses to the actions of a binding set.
type Resolver struct {
	actions map[string]Action
}

// NewResolver creates a resolver from bindings. Later bindings win when a
// key appears twice.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[string]Action)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to a key name such as "j" or "ctrl+z",
// or "" when the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// ResolveMsg resolves a key press.
func (r *Resolver) ResolveMsg(msg tea.KeyMsg) Action {
	return r.Resolve(msg.String())
}
