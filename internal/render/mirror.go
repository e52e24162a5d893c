package render

import "github.com/vovakirdan/ohoy/internal/core"

// Mirror is an in-memory Terminal that applies writes to a screen. It backs
// headless rendering and lets tests compare what a real terminal would show.
type Mirror struct {
	screen *core.Screen
	x, y   int
	ctx    core.DrawContext

	Puts   int // glyphs written since creation
	Syncs  int
	Writes []core.Point // positions of every Put, in order
}

// NewMirror creates a mirror of the given size, initially blank.
func NewMirror(width, height int) *Mirror {
	return &Mirror{screen: core.NewScreen(width, height)}
}

// Screen returns what the mirrored terminal currently shows.
func (m *Mirror) Screen() *core.Screen { return m.screen }

// MoveTo positions the cursor.
func (m *Mirror) MoveTo(x, y int) { m.x, m.y = x, y }

// SetForeground selects the foreground color for following glyphs.
func (m *Mirror) SetForeground(c core.Color) { m.ctx.Fg = c }

// SetBackground selects the background color for following glyphs.
func (m *Mirror) SetBackground(c core.Color) { m.ctx.Bg = c }

// Put writes a glyph at the cursor and advances it.
func (m *Mirror) Put(r rune) {
	m.screen.Set(m.x, m.y, r, m.ctx)
	m.Writes = append(m.Writes, core.Point{X: m.x, Y: m.y})
	m.Puts++
	m.x++
}

// Sync is a no-op apart from counting.
func (m *Mirror) Sync() error {
	m.Syncs++
	return nil
}

// Reset forgets recorded writes but keeps the screen.
func (m *Mirror) Reset() {
	m.Puts = 0
	m.Writes = m.Writes[:0]
}
