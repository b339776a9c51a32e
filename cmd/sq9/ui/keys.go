package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the chart key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Back      key.Binding
	Forward   key.Binding
	Unit      key.Binding
	Increment key.Binding
	Reset     key.Binding
	Today     key.Binding
	EditDate  key.Binding
	EditStep  key.Binding
	Focus     key.Binding
	Toggle    key.Binding
	Inner     key.Binding
	Outer     key.Binding
	AllOff    key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Text input bindings
	Apply  key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward"),
		),
		Unit: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "step unit"),
		),
		Increment: key.NewBinding(
			key.WithKeys("i", "+"),
			key.WithHelp("i", "forward by custom"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset step"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		EditDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "edit date"),
		),
		EditStep: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "custom step"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "n"),
			key.WithHelp("1-9/0/n", "toggle body"),
		),
		Inner: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "inner"),
		),
		Outer: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "outer"),
		),
		AllOff: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "all off/on"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Unit, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.Unit, k.Today},
		{k.EditDate, k.EditStep, k.Increment, k.Reset, k.Focus},
		{k.Toggle, k.Inner, k.Outer, k.AllOff},
		{k.Help, k.Quit},
	}
}

// AllBindings returns every chart binding, grouped as in FullHelp.
func (k KeyMap) AllBindings() []key.Binding {
	var out []key.Binding
	for _, group := range k.FullHelp() {
		out = append(out, group...)
	}
	return out
}
