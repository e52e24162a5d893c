// Package tcellscreen runs a voyage on a tcell screen instead of raw ANSI
// output. The renderer still decides which cells change; tcell only moves
// them to the terminal.
package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/ohoy/internal/core"
)

// Terminal adapts a tcell.Screen to render.Terminal.
type Terminal struct {
	screen tcell.Screen
	x, y   int
	style  tcell.Style
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, style: tcell.StyleDefault}
}

// MoveTo positions the cursor.
func (t *Terminal) MoveTo(x, y int) { t.x, t.y = x, y }

// SetForeground selects the foreground color.
func (t *Terminal) SetForeground(c core.Color) { t.style = t.style.Foreground(Color(c)) }

// SetBackground selects the background color.
func (t *Terminal) SetBackground(c core.Color) { t.style = t.style.Background(Color(c)) }

// Put writes one glyph and advances the cursor.
func (t *Terminal) Put(r rune) {
	t.screen.SetContent(t.x, t.y, r, nil, t.style)
	t.x++
}

// Sync shows the cells set since the last Sync.
func (t *Terminal) Sync() error {
	t.screen.Show()
	return nil
}

// Color maps a palette color to tcell.
func Color(c core.Color) tcell.Color {
	n := c.ANSI()
	if n < 0 {
		return tcell.ColorReset
	}
	return tcell.PaletteColor(n)
}
