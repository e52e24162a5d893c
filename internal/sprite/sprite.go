// Package sprite holds the immutable glyph grids used for islands and ships.
//
// Sprites arrive as plain text: an optional first line naming a palette color,
// followed by glyph rows. A few characters are reserved markers and are parsed
// into explicit cell kinds so drawing and collision code never compare runes.
package sprite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/ohoy/internal/core"
)

// Reserved marker glyphs in sprite source text.
const (
	NameMarker     = 'N' // where an explored island's name is drawn
	LandmarkMarker = '$' // where the island's landmark symbol is drawn
	HoleMarker     = '.' // an opaque blank punched into the shape
)

// CellKind classifies a sprite cell.
type CellKind uint8

const (
	// CellBlank is see-through: nothing is drawn and nothing collides.
	CellBlank CellKind = iota
	// CellSolid is a literal glyph.
	CellSolid
	// CellTransparent draws a blank glyph over whatever lies below.
	CellTransparent
	// CellNameSlot is replaced by the owner's name when drawn.
	CellNameSlot
	// CellLandmarkSlot is replaced by the owner's landmark symbol when drawn.
	CellLandmarkSlot
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellBlank:
		return "Blank"
	case CellSolid:
		return "Solid"
	case CellTransparent:
		return "Transparent"
	case CellNameSlot:
		return "NameSlot"
	case CellLandmarkSlot:
		return "LandmarkSlot"
	default:
		return "Unknown"
	}
}

// Cell is a classified sprite cell. Glyph is only meaningful for CellSolid.
type Cell struct {
	Kind  CellKind
	Glyph rune
}

// Solid reports whether the cell blocks movement.
// Name slots are label space, not terrain.
func (c Cell) Solid() bool {
	return c.Kind != CellBlank && c.Kind != CellNameSlot
}

// classify turns a source rune into a cell.
func classify(r rune) Cell {
	switch r {
	case ' ':
		return Cell{Kind: CellBlank, Glyph: ' '}
	case NameMarker:
		return Cell{Kind: CellNameSlot, Glyph: r}
	case LandmarkMarker:
		return Cell{Kind: CellLandmarkSlot, Glyph: r}
	case HoleMarker:
		return Cell{Kind: CellTransparent, Glyph: ' '}
	default:
		return Cell{Kind: CellSolid, Glyph: r}
	}
}

// Sprite is an immutable width×height grid of cells with a default color.
type Sprite struct {
	width  int
	height int
	color  core.Color
	cells  []Cell
}

// ErrEmpty is returned when the source contains no glyph rows.
var ErrEmpty = errors.New("sprite: no glyph rows")

// Parse builds a sprite from multi-line text. Both "\n" and "\r\n" line endings
// are accepted; a single trailing newline does not add a row.
func Parse(text string) (*Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmpty
	}
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines builds a sprite from already split lines.
// If the first line names a palette color it sets the default color and is
// not part of the grid; otherwise the default color is white.
func ParseLines(lines []string) (*Sprite, error) {
	color := core.ColorWhite
	if len(lines) > 0 {
		if c, ok := core.ParseColor(lines[0]); ok && c != core.ColorDefault {
			color = c
			lines = lines[1:]
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}
	if width == 0 {
		return nil, fmt.Errorf("sprite: %d rows but zero width", len(rows))
	}

	s := &Sprite{
		width:  width,
		height: len(rows),
		color:  color,
		cells:  make([]Cell, width*len(rows)),
	}
	for y, row := range rows {
		for x := 0; x < width; x++ {
			r := ' '
			if x < len(row) {
				r = row[x]
			}
			s.cells[y*width+x] = classify(r)
		}
	}
	return s, nil
}

// MustParse is Parse for sprites compiled into the binary; it panics on error.
func MustParse(text string) *Sprite {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in cells.
func (s *Sprite) Height() int { return s.height }

// Color returns the default foreground color.
func (s *Sprite) Color() core.Color { return s.color }

// Bounds returns the sprite rectangle placed at origin.
func (s *Sprite) Bounds(origin core.Point) core.Rect {
	return core.NewRect(origin.X, origin.Y, s.width, s.height)
}

// In reports whether the local coordinate lies inside the grid.
func (s *Sprite) In(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// At returns the cell at a local coordinate; out-of-range coordinates are blank.
func (s *Sprite) At(x, y int) Cell {
	if !s.In(x, y) {
		return Cell{Kind: CellBlank, Glyph: ' '}
	}
	return s.cells[y*s.width+x]
}

// Solid reports whether the local coordinate is inside the sprite and blocks.
func (s *Sprite) Solid(x, y int) bool {
	return s.In(x, y) && s.cells[y*s.width+x].Solid()
}

// Count returns how many cells are of the given kind.
func (s *Sprite) Count(kind CellKind) int {
	n := 0
	for _, c := range s.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
