// Package mask answers overlap questions between world points and placed
// sprites. The same sprite cells that are drawn are used as the collision
// mask, so what blocks the ship is exactly what the player sees as land.
package mask

import (
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
)

// Placed is anything with a sprite at a world position.
type Placed interface {
	Origin() core.Point
	Mask() *sprite.Sprite
}

// Hit reports whether world point p lands on a solid cell of item.
func Hit(item Placed, p core.Point) bool {
	m := item.Mask()
	if m == nil {
		return false
	}
	local := p.Sub(item.Origin())
	return m.Solid(local.X, local.Y)
}

// PointOverlaps returns the first item, in slice order, whose sprite is solid
// at world point p.
func PointOverlaps[T Placed](items []T, p core.Point) (T, bool) {
	for _, item := range items {
		if Hit(item, p) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DiscOverlaps runs PointOverlaps for every offset in the square
// [-radius, radius]² around center. Offsets are scanned row by row from the
// top-left, and the first hit wins; world generation depends on this order
// to stay reproducible for a given seed.
func DiscOverlaps[T Placed](items []T, center core.Point, radius int) (T, bool) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if item, ok := PointOverlaps(items, core.Point{X: center.X + dx, Y: center.Y + dy}); ok {
				return item, true
			}
		}
	}
	var zero T
	return zero, false
}
