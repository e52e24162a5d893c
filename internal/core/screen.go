package core

import (
	"strings"
)

// Cell is one character position of a screen: a glyph plus its color pair.
// A zero Glyph marks a cell whose terminal content is unknown.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// Screen is a 2D cell buffer for rendering the game.
// It decouples composing a frame from the terminal; the render package diffs
// two screens to decide what actually has to be written.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions,
// cleared to spaces on default colors.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear(DrawContext{})
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with spaces in the given colors.
func (s *Screen) Clear(ctx DrawContext) {
	s.Fill(Cell{Glyph: ' ', Fg: ctx.Fg, Bg: ctx.Bg})
}

// Fill sets every cell to c.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a glyph at the given position using the context colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, ctx DrawContext) {
	s.SetCell(x, y, Cell{Glyph: r, Fg: ctx.Fg, Bg: ctx.Bg})
}

// SetCell overwrites a whole cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a default-colored space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Glyph: ' '}
	}
	return s.cells[y][x]
}

// Glyph returns just the rune at the given position.
func (s *Screen) Glyph(x, y int) rune {
	return s.Get(x, y).Glyph
}

// DrawText writes a string horizontally starting at (x, y).
// Characters left of column 0 or right of the last column are dropped;
// a row outside the screen drops the whole string.
func (s *Screen) DrawText(x, y int, text string, ctx DrawContext) {
	if y < 0 || y >= s.height {
		return
	}
	col := x
	for _, r := range text {
		if col >= s.width {
			return
		}
		if col >= 0 {
			s.cells[y][col] = Cell{Glyph: r, Fg: ctx.Fg, Bg: ctx.Bg}
		}
		col++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, ctx DrawContext) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, ctx)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, ctx DrawContext) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill, ctx)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, ctx DrawContext) {
	s.Set(r.X, r.Y, '┌', ctx)
	s.Set(r.Right()-1, r.Y, '┐', ctx)
	s.Set(r.X, r.Bottom()-1, '└', ctx)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', ctx)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─', ctx)
		s.Set(x, r.Bottom()-1, '─', ctx)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', ctx)
		s.Set(r.Right()-1, y, '│', ctx)
	}
}

// Equal reports whether two screens have the same size and identical cells.
func (s *Screen) Equal(other *Screen) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CopyFrom overwrites s with the contents of other. Sizes must match;
// mismatched screens are left untouched.
func (s *Screen) CopyFrom(other *Screen) {
	if s.width != other.width || s.height != other.height {
		return
	}
	for y := range s.cells {
		copy(s.cells[y], other.cells[y])
	}
}

// String converts the screen glyphs to plain text, rows joined with newlines.
// Colors are dropped; unknown cells render as spaces.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Glyph == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}
