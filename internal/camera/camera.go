// Package camera maps the large world onto the small viewport.
package camera

import "github.com/vovakirdan/ohoy/internal/core"

// Camera is a viewport-sized window onto the world, anchored at its top-left
// world position. The anchor always satisfies
// 0 <= anchor <= max(0, worldSize-viewSize) on each axis.
type Camera struct {
	viewW, viewH   int
	worldW, worldH int
	anchor         core.Point
}

// New creates a camera anchored at the world origin.
func New(viewW, viewH, worldW, worldH int) Camera {
	return Camera{viewW: viewW, viewH: viewH, worldW: worldW, worldH: worldH}
}

// Anchor returns the world position of the viewport's top-left cell.
func (c Camera) Anchor() core.Point { return c.anchor }

// ViewSize returns the viewport dimensions.
func (c Camera) ViewSize() (int, int) { return c.viewW, c.viewH }

// View returns the viewport rectangle in world coordinates.
func (c Camera) View() core.Rect {
	return core.NewRect(c.anchor.X, c.anchor.Y, c.viewW, c.viewH)
}

// Follow centers the viewport on target, then clamps each axis so the view
// never scrolls past the world edge. When the world is smaller than the view
// the anchor stays at 0 and the surplus viewport cells fall outside the world.
func (c *Camera) Follow(target core.Point) {
	c.anchor = core.Point{
		X: core.Clamp(target.X-c.viewW/2, 0, max(0, c.worldW-c.viewW)),
		Y: core.Clamp(target.Y-c.viewH/2, 0, max(0, c.worldH-c.viewH)),
	}
}

// WorldToScreen converts a world position to viewport coordinates. The result
// may lie outside the viewport; callers drop writes there.
func (c Camera) WorldToScreen(p core.Point) core.Point {
	return p.Sub(c.anchor)
}

// ScreenToWorld converts viewport coordinates back to a world position.
func (c Camera) ScreenToWorld(p core.Point) core.Point {
	return p.Add(c.anchor)
}

// Visible reports whether a world position is inside the viewport.
func (c Camera) Visible(p core.Point) bool {
	return c.View().ContainsPoint(p)
}
