package screen

import "github.com/charmbracelet/bubbles/key"

// DecideKeys are active while a record awaits its verdict.
type DecideKeys struct {
	Include  key.Binding
	Exclude  key.Binding
	Skip     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var decideKeys = DecideKeys{
	Include: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "include"),
	),
	Exclude: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "exclude"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "save & quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "scroll"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
}

// ReasonKeys are active while the exclusion menu is open. Digits are
// matched against the configured reasons directly.
type ReasonKeys struct {
	Cancel key.Binding
	Quit   key.Binding
}

var reasonKeys = ReasonKeys{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+c", "quit"),
	),
}

// NoteKeys are active while the free-text note input is open.
type NoteKeys struct {
	Accept key.Binding
	Cancel key.Binding
}

var noteKeys = NoteKeys{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
}
