package tui

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/ohoy/internal/core"
)

// ANSITerminal writes renderer output as ANSI escape sequences. Writes are
// buffered until Sync so a frame reaches the terminal in one piece.
type ANSITerminal struct {
	buf *bufio.Writer
	out *termenv.Output
}

// NewANSITerminal wraps w. Colors are limited to the 16-color ANSI palette.
func NewANSITerminal(w io.Writer) *ANSITerminal {
	buf := bufio.NewWriterSize(w, 64*1024)
	return &ANSITerminal{
		buf: buf,
		out: termenv.NewOutput(buf, termenv.WithProfile(termenv.ANSI)),
	}
}

// MoveTo positions the cursor; x and y are zero-based.
func (t *ANSITerminal) MoveTo(x, y int) { t.out.MoveCursor(y+1, x+1) }

// SetForeground selects the foreground color.
func (t *ANSITerminal) SetForeground(c core.Color) { t.color(c, false) }

// SetBackground selects the background color.
func (t *ANSITerminal) SetBackground(c core.Color) { t.color(c, true) }

func (t *ANSITerminal) color(c core.Color, bg bool) {
	n := c.ANSI()
	if n < 0 {
		if bg {
			_, _ = t.buf.WriteString(termenv.CSI + "49m")
		} else {
			_, _ = t.buf.WriteString(termenv.CSI + "39m")
		}
		return
	}
	_, _ = t.buf.WriteString(termenv.CSI + termenv.ANSIColor(n).Sequence(bg) + "m")
}

// Put writes one glyph at the cursor.
func (t *ANSITerminal) Put(r rune) { _, _ = t.buf.WriteRune(r) }

// Sync flushes everything written since the last Sync.
func (t *ANSITerminal) Sync() error { return t.buf.Flush() }

// Enter switches to the alternate screen, clears it and hides the cursor.
func (t *ANSITerminal) Enter() error {
	t.out.AltScreen()
	t.out.ClearScreen()
	t.out.HideCursor()
	return t.Sync()
}

// Leave restores colors, the cursor and the main screen.
func (t *ANSITerminal) Leave() error {
	t.out.Reset()
	t.out.ShowCursor()
	t.out.ExitAltScreen()
	return t.Sync()
}
