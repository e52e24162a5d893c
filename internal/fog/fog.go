// Package fog tracks which world cells the player has seen.
package fog

import "github.com/vovakirdan/ohoy/internal/core"

// Map is a per-cell hidden flag over a bounded world. Cells only ever go from
// hidden to revealed.
type Map struct {
	width    int
	height   int
	hidden   []bool
	revealed int
}

// New creates a fully hidden map.
func New(width, height int) *Map {
	width, height = max(width, 0), max(height, 0)
	m := &Map{
		width:  width,
		height: height,
		hidden: make([]bool, width*height),
	}
	for i := range m.hidden {
		m.hidden[i] = true
	}
	return m
}

// Width returns the map width.
func (m *Map) Width() int { return m.width }

// Height returns the map height.
func (m *Map) Height() int { return m.height }

// Hidden reports whether a cell is still covered. Cells outside the world
// are always hidden.
func (m *Map) Hidden(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return true
	}
	return m.hidden[y*m.width+x]
}

// Revealed returns how many cells have been uncovered so far.
func (m *Map) Revealed() int {
	return m.revealed
}

// Reveal uncovers an ellipse around center. Terminal cells are roughly twice
// as tall as wide, so the scan reaches 2*radius columns but only radius rows,
// and horizontal offsets are halved (integer division) before the distance
// test. Cells outside the world are skipped. Returns the number of cells that
// changed state.
func (m *Map) Reveal(center core.Point, radius int) int {
	if radius <= 0 {
		return 0
	}
	changed := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius * 2; dx <= radius*2; dx++ {
			if !InReveal(dx, dy, radius) {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if x < 0 || x >= m.width || y < 0 || y >= m.height {
				continue
			}
			i := y*m.width + x
			if m.hidden[i] {
				m.hidden[i] = false
				changed++
			}
		}
	}
	m.revealed += changed
	return changed
}

// InReveal reports whether offset (dx, dy) from a reveal center falls inside
// the ellipse Reveal uncovers for radius.
func InReveal(dx, dy, radius int) bool {
	if core.Abs(dx) > radius*2 || core.Abs(dy) > radius {
		return false
	}
	hx := dx / 2
	return hx*hx+dy*dy < radius*radius
}
