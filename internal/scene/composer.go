// Package scene composes one frame of the sea into a screen buffer.
package scene

import (
	"github.com/vovakirdan/ohoy/internal/camera"
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/fog"
	"github.com/vovakirdan/ohoy/internal/sprite"
	"github.com/vovakirdan/ohoy/internal/world"
)

// Palette is the set of colors the composer paints with besides the ones
// carried by sprites and landmarks.
type Palette struct {
	Ocean      core.Color // background of open water
	Fog        core.Color // background of hidden cells
	Foreground core.Color // ink of fogged cells
}

// DefaultPalette matches the classic ASCII sea.
func DefaultPalette() Palette {
	return Palette{
		Ocean:      core.ColorDarkBlue,
		Fog:        core.ColorBlack,
		Foreground: core.ColorGray,
	}
}

// View is everything that is drawn in a frame.
type View struct {
	Bounds  core.Rect // world rectangle; cells outside it are drawn blank
	Islands []*world.Island
	Ship    *world.Ship
	Fog     *fog.Map // nil disables the fog pass
}

// ViewOf builds a view of a world and its ship.
func ViewOf(w *world.World, ship *world.Ship) View {
	return View{
		Bounds:  w.Bounds(),
		Islands: w.Islands,
		Ship:    ship,
		Fog:     w.Fog,
	}
}

// Composer draws views. It holds no per-frame state, every draw call gets
// its colors from the DrawContext passed to it.
type Composer struct {
	Palette Palette
}

// NewComposer creates a composer with the given palette.
func NewComposer(p Palette) Composer {
	return Composer{Palette: p}
}

// Compose overwrites dst with the frame seen through cam: ocean first, then
// islands in placement order, then the ship, then fog over anything hidden.
func (c Composer) Compose(dst *core.Screen, cam camera.Camera, v View) {
	sea := core.DrawContext{Fg: core.ColorDefault, Bg: c.Palette.Ocean}
	dst.Clear(sea)

	for _, is := range v.Islands {
		c.drawIsland(dst, cam, is, sea)
	}
	if v.Ship != nil {
		if spr := v.Ship.Sprite(); spr != nil {
			drawSprite(dst, cam, spr, v.Ship.Pos, sea)
		}
	}
	c.drawFog(dst, cam, v)
}

func (c Composer) drawIsland(dst *core.Screen, cam camera.Camera, is *world.Island, ctx core.DrawContext) {
	spr := is.Sprite
	land := ctx.WithFg(spr.Color())
	mark := ctx.WithFg(is.Landmark.Color)

	for y := 0; y < spr.Height(); y++ {
		for x := 0; x < spr.Width(); x++ {
			p := cam.WorldToScreen(is.Pos.Add(core.Pt(x, y)))
			cell := spr.At(x, y)
			switch cell.Kind {
			case sprite.CellNameSlot:
				if is.Explored {
					dst.DrawText(p.X, p.Y, is.Name, land)
				} else {
					dst.Set(p.X, p.Y, ' ', land)
				}
			case sprite.CellLandmarkSlot:
				dst.DrawText(p.X, p.Y, is.Landmark.Symbol, mark)
			case sprite.CellTransparent:
				dst.Set(p.X, p.Y, ' ', land)
			case sprite.CellSolid:
				dst.Set(p.X, p.Y, cell.Glyph, land)
			}
		}
	}
}

func drawSprite(dst *core.Screen, cam camera.Camera, spr *sprite.Sprite, pos core.Point, ctx core.DrawContext) {
	ctx = ctx.WithFg(spr.Color())
	for y := 0; y < spr.Height(); y++ {
		for x := 0; x < spr.Width(); x++ {
			cell := spr.At(x, y)
			p := cam.WorldToScreen(pos.Add(core.Pt(x, y)))
			switch cell.Kind {
			case sprite.CellBlank:
			case sprite.CellTransparent:
				dst.Set(p.X, p.Y, ' ', ctx)
			default:
				dst.Set(p.X, p.Y, cell.Glyph, ctx)
			}
		}
	}
}

func (c Composer) drawFog(dst *core.Screen, cam camera.Camera, v View) {
	dark := core.DrawContext{Fg: c.Palette.Foreground, Bg: c.Palette.Fog}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			wp := cam.ScreenToWorld(core.Pt(x, y))
			if !v.Bounds.ContainsPoint(wp) || (v.Fog != nil && v.Fog.Hidden(wp.X, wp.Y)) {
				dst.Set(x, y, ' ', dark)
			}
		}
	}
}
