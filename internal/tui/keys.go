package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/recite/internal/session"
)

type keyMap struct {
	Quit         key.Binding
	Submit       key.Binding
	Skip         key.Binding
	Reset        key.Binding
	ExitPractice key.Binding
	TryAgain     key.Binding
	NewText      key.Binding
	OpacityUp    key.Binding
	OpacityDown  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit text"),
		),
		Skip: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "skip sentence"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		ExitPractice: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "exit practice mode"),
		),
		TryAgain: key.NewBinding(
			key.WithKeys("enter", "ctrl+r"),
			key.WithHelp("enter", "try again"),
		),
		NewText: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new text"),
		),
		OpacityUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "opacity +"),
		),
		OpacityDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "opacity -"),
		),
	}
}

// stateHelp adapts the bindings active in one state to help.KeyMap.
type stateHelp []key.Binding

func (h stateHelp) ShortHelp() []key.Binding {
	return h
}

func (h stateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

func (k keyMap) forState(state session.State, practice bool) stateHelp {
	switch state {
	case session.Idle:
		return stateHelp{k.Submit, k.Quit}
	case session.Completed:
		return stateHelp{k.TryAgain, k.NewText, k.Quit}
	default:
		restart := k.Reset
		if practice {
			restart = k.ExitPractice
		}
		return stateHelp{k.Skip, restart, k.OpacityUp, k.OpacityDown, k.NewText, k.Quit}
	}
}
