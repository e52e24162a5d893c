// Package world holds the ASCII sea: its islands, the ship and the fog that
// hides them, plus the seeded generator that lays them out.
package world

import (
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
)

// Direction is a compass heading. It selects which ship sprite is drawn.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists every heading in declaration order.
var Directions = []Direction{North, South, West, East}

// String returns the heading as it reads in the journal.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell step for the heading.
func (d Direction) Delta() core.Point {
	switch d {
	case North:
		return core.Pt(0, -1)
	case South:
		return core.Pt(0, 1)
	case West:
		return core.Pt(-1, 0)
	case East:
		return core.Pt(1, 0)
	default:
		return core.Point{}
	}
}

// Landmark is a feature drawn on an island in its own color.
type Landmark struct {
	Name   string
	Color  core.Color
	Symbol string
}

// Island is a named piece of land. Its sprite doubles as its collision mask.
type Island struct {
	Name     string
	Landmark Landmark
	Explored bool
	Pos      core.Point
	Sprite   *sprite.Sprite
}

// Origin returns the island's top-left world position.
func (i *Island) Origin() core.Point { return i.Pos }

// Mask returns the sprite used for overlap queries.
func (i *Island) Mask() *sprite.Sprite { return i.Sprite }

// Bounds returns the world rectangle covered by the island's sprite.
func (i *Island) Bounds() core.Rect { return i.Sprite.Bounds(i.Pos) }

// Center returns the middle cell of the island's sprite.
func (i *Island) Center() core.Point { return i.Bounds().Center() }

// Ship is the player's vessel. Pos is the top-left of the current sprite and
// Anchor is the offset of the logical center cell used for all movement and
// collision math.
type Ship struct {
	Pos     core.Point
	Facing  Direction
	Sprites map[Direction]*sprite.Sprite
	Anchor  core.Point
}

// Center returns the ship's logical center in world coordinates.
func (s *Ship) Center() core.Point { return s.Pos.Add(s.Anchor) }

// Sprite returns the sprite for the current heading.
func (s *Ship) Sprite() *sprite.Sprite { return s.Sprites[s.Facing] }

// Footprint returns the smallest rectangle that covers the ship at its
// current position whatever its heading.
func (s *Ship) Footprint() core.Rect {
	w, h := 1, 1
	for _, spr := range s.Sprites {
		if spr == nil {
			continue
		}
		w = max(w, spr.Width())
		h = max(h, spr.Height())
	}
	return core.NewRect(s.Pos.X, s.Pos.Y, w, h)
}
