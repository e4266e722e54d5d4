package testutil

import tea "github.com/charmbracelet/bubbletea"

// Updater is a bubbletea component whose Update returns its own type.
type Updater[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
}

// Harness drives a component in tests. It records the commands returned by
// Update without running them, so tests decide when timers fire.
type Harness[M Updater[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness wraps m.
func NewHarness[M Updater[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component state.
func (h *Harness[M]) Model() M {
	return h.model
}

// Send passes msg to Update and records the returned command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends the key message for a key name, see Key.
func (h *Harness[M]) SendKey(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Pending returns the commands recorded since the last Drain.
func (h *Harness[M]) Pending() []tea.Cmd {
	return h.cmds
}

// Drain runs every recorded command and returns the produced messages
// without delivering them.
func (h *Harness[M]) Drain() []tea.Msg {
	cmds := h.cmds
	h.cmds = nil
	var out []tea.Msg
	for _, c := range cmds {
		out = append(out, Messages(c)...)
	}
	return out
}

// Settle drains recorded commands and feeds the messages back until no
// command is left. Messages for which keep returns false are dropped.
func (h *Harness[M]) Settle(keep func(tea.Msg) bool) []tea.Msg {
	var delivered []tea.Msg
	for range 16 {
		msgs := h.Drain()
		if len(msgs) == 0 {
			break
		}
		for _, msg := range msgs {
			if keep != nil && !keep(msg) {
				continue
			}
			delivered = append(delivered, msg)
			h.Send(msg)
		}
	}
	return delivered
}
