package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMapApp struct {
	Home         key.Binding
	Chat         key.Binding
	ToggleLocale key.Binding
	Quit         key.Binding
}

type KeyMapHome struct {
	Submit     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

type KeyMapChat struct {
	CycleFocus           key.Binding
	Send                 key.Binding
	NewChat              key.Binding
	ToggleModel          key.Binding
	Copy                 key.Binding
	PreviousHistoryEntry key.Binding
	NextHistoryEntry     key.Binding
	ScrollUp             key.Binding
	ScrollDown           key.Binding
}

type KeyMapList struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keyMapApp = KeyMapApp{
	// Routes.
	Home: key.NewBinding(
		key.WithKeys("f1", "alt+1"),
	),
	Chat: key.NewBinding(
		key.WithKeys("f2", "alt+2"),
	),

	ToggleLocale: key.NewBinding(
		key.WithKeys("ctrl+l"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

var keyMapHome = KeyMapHome{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
	),
}

var keyMapChat = KeyMapChat{
	CycleFocus: key.NewBinding(
		key.WithKeys("tab"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
	),
	NewChat: key.NewBinding(
		key.WithKeys("ctrl+n"),
	),
	ToggleModel: key.NewBinding(
		key.WithKeys("ctrl+t"),
	),
	Copy: key.NewBinding(
		key.WithKeys("alt+w"),
	),

	// Input history.
	PreviousHistoryEntry: key.NewBinding(
		key.WithKeys("alt+p"),
	),
	NextHistoryEntry: key.NewBinding(
		key.WithKeys("alt+n"),
	),

	// Scrolling.
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
	),
}

var keyMapList = KeyMapList{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
	),

	// Delete confirmation.
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
	),
}
