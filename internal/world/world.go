package world

import (
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/fog"
	"github.com/vovakirdan/ohoy/internal/mask"
)

// World is the bounded sea. Fog is nil when fog of war is disabled;
// otherwise its size always equals the world size.
type World struct {
	Width   int
	Height  int
	Fog     *fog.Map
	Islands []*Island
	Goal    *Island // declared on the first port, nil before
}

// New creates an empty world, with a fully hidden fog map when withFog is set.
func New(width, height int, withFog bool) *World {
	w := &World{Width: width, Height: height}
	if withFog {
		w.Fog = fog.New(width, height)
	}
	return w
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Rect { return core.NewRect(0, 0, w.Width, w.Height) }

// IslandAt returns the first island with a solid cell within radius of p.
func (w *World) IslandAt(p core.Point, radius int) (*Island, bool) {
	return mask.DiscOverlaps(w.Islands, p, radius)
}

// Reveal uncovers fog around center and reports how many cells changed.
func (w *World) Reveal(center core.Point, radius int) int {
	if w.Fog == nil {
		return 0
	}
	return w.Fog.Reveal(center, radius)
}

// Hidden reports whether a world cell is covered by fog. Cells outside the
// world are always hidden.
func (w *World) Hidden(x, y int) bool {
	if w.Fog == nil {
		return !w.Bounds().Contains(x, y)
	}
	return w.Fog.Hidden(x, y)
}

// Explored counts islands the ship has ported at.
func (w *World) Explored() int {
	n := 0
	for _, is := range w.Islands {
		if is.Explored {
			n++
		}
	}
	return n
}
