// Package tui provides the Bubble Tea integration for ohoy. Bubble Tea owns
// raw input and the event loop; frames go straight to the terminal through
// the differential renderer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to type the next character of a journal entry.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after pace.
func tickCmd(pace time.Duration) tea.Cmd {
	return tea.Tick(pace, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
