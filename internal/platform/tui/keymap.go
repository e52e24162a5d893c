package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ohoy/internal/core"
)

// KeyMap binds physical keys to game actions. It doubles as the source of
// the help line drawn under overlays.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Port    key.Binding
	Journal key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
	Capture key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "east"),
		),
		Port: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "port"),
		),
		Journal: key.NewBinding(
			key.WithKeys("j", "J"),
			key.WithHelp("j", "journal"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Capture: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Port, k.Journal, k.Confirm, k.Cancel, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Port, k.Journal},
		{k.Confirm, k.Cancel, k.Quit, k.Capture},
	}
}

// Action translates a key message into a game action. Unbound keys map to
// ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Port):
		return core.ActionInteract
	case key.Matches(msg, k.Journal):
		return core.ActionJournal
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	}
	return core.ActionNone
}

// Hint renders the short help as plain text, suitable for drawing into a
// screen buffer.
func (k KeyMap) Hint() string {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles = help.Styles{}
	return h.ShortHelpView(k.ShortHelp())
}
