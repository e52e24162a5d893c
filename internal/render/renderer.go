// Package render owns the two screen buffers and turns the difference between
// them into the smallest set of terminal writes.
package render

import (
	"fmt"

	"github.com/vovakirdan/ohoy/internal/core"
)

// Terminal is the output device the renderer drives. Implementations may
// buffer; Sync commits everything written since the previous Sync.
type Terminal interface {
	MoveTo(x, y int)
	SetForeground(c core.Color)
	SetBackground(c core.Color)
	Put(r rune)
	Sync() error
}

// FlushStats describes what a single Flush emitted.
type FlushStats struct {
	Cells       int // glyphs written, one per differing cell
	Moves       int // cursor positioning commands
	ColorSwitch int // foreground or background changes
}

// Renderer double-buffers frames. Callers compose into Next(), then Flush
// writes only the cells that differ from what the terminal already shows and
// swaps the two buffers by reference.
type Renderer struct {
	out     Terminal
	current *core.Screen // what the terminal shows
	next    *core.Screen // being composed

	// running terminal state, kept across flushes
	fg, bg     core.Color
	colorValid bool
	cx, cy     int
	cursorOK   bool
}

// New creates a renderer for a width×height viewport. The current buffer
// starts unknown so the first Flush paints every cell.
func New(out Terminal, width, height int) *Renderer {
	r := &Renderer{
		out:     out,
		current: core.NewScreen(width, height),
		next:    core.NewScreen(width, height),
	}
	r.Invalidate()
	return r
}

// Width returns the viewport width.
func (r *Renderer) Width() int { return r.next.Width() }

// Height returns the viewport height.
func (r *Renderer) Height() int { return r.next.Height() }

// Next returns the buffer being composed for the coming frame.
func (r *Renderer) Next() *core.Screen { return r.next }

// Current returns the buffer that mirrors the terminal. It must not be
// written to.
func (r *Renderer) Current() *core.Screen { return r.current }

// Write sets one cell of the next frame. Points outside the viewport are
// dropped; this is how off-screen drawing is clipped.
func (r *Renderer) Write(p core.Point, glyph rune, ctx core.DrawContext) {
	r.next.Set(p.X, p.Y, glyph, ctx)
}

// Invalidate forgets what the terminal shows, so the next Flush repaints
// everything. Use it after something else has drawn on the terminal.
func (r *Renderer) Invalidate() {
	r.current.Fill(core.Cell{})
	r.colorValid = false
	r.cursorOK = false
}

// Flush emits one write per cell that differs between next and current, then
// swaps the buffers. Colors are only sent when they differ from the last
// colors emitted, and the cursor is only positioned when it is not already in
// place after the previous glyph.
func (r *Renderer) Flush() (FlushStats, error) {
	var st FlushStats
	w, h := r.next.Width(), r.next.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := r.next.Get(x, y)
			if c == r.current.Get(x, y) {
				continue
			}

			if !r.cursorOK || r.cx != x || r.cy != y {
				r.out.MoveTo(x, y)
				st.Moves++
			}
			if !r.colorValid || r.fg != c.Fg {
				r.out.SetForeground(c.Fg)
				r.fg = c.Fg
				st.ColorSwitch++
			}
			if !r.colorValid || r.bg != c.Bg {
				r.out.SetBackground(c.Bg)
				r.bg = c.Bg
				st.ColorSwitch++
			}
			r.colorValid = true

			glyph := c.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			r.out.Put(glyph)
			st.Cells++

			// The cursor position after writing the last column depends on
			// the terminal's wrap mode, so stop tracking there.
			r.cx, r.cy = x+1, y
			r.cursorOK = x+1 < w
		}
	}

	r.current, r.next = r.next, r.current

	if err := r.out.Sync(); err != nil {
		return st, fmt.Errorf("render: sync terminal: %w", err)
	}
	return st, nil
}
