package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the terminal.
type KeyMap struct {
	// History
	Older  key.Binding
	Newer  key.Binding
	Search key.Binding // Fuzzy-search history with the current input

	// Scrollback
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Enter key.Binding // Run the input line
	Copy  key.Binding // Copy the last output to the clipboard

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Older: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older"),
		),
		Newer: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "search"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy output"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Older, k.Newer, k.Search, k.Copy, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Copy, k.Quit},
		{k.Older, k.Newer, k.Search},
		{k.PageUp, k.PageDown},
	}
}
