// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Submit sends the typed preferences for recommendations.
	Submit key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Want adds the selected book to the want-to-read shelf.
	Want key.Binding

	// MarkRead marks the selected book as already read.
	MarkRead key.Binding

	// More requests another batch of recommendations.
	More key.Binding

	// Remove removes the selected book from its shelf.
	Remove key.Binding

	// Move moves the selected book to the other shelf.
	Move key.Binding

	// SwitchView cycles between the discover and shelves views.
	SwitchView key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "recommend"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Want: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "want to read"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark read"),
		),
		More: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		Move: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "move"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// DiscoverHelp returns keybindings for the discover view.
func (k *KeyMap) DiscoverHelp() []key.Binding {
	return []key.Binding{k.Up, k.Want, k.MarkRead, k.More, k.SwitchView}
}

// ShelvesHelp returns keybindings for the shelves view.
func (k *KeyMap) ShelvesHelp() []key.Binding {
	return []key.Binding{k.Up, k.Move, k.Remove, k.SwitchView}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Submit},
		{k.Want, k.MarkRead, k.More},
		{k.Move, k.Remove, k.SwitchView},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
