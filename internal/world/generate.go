package world

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
)

var (
	// ErrNoRoom is returned when an island cannot be placed within
	// Params.MaxAttempts tries.
	ErrNoRoom = errors.New("world: no room left for island")

	// ErrCatalog is returned when the asset catalog cannot furnish the
	// requested world.
	ErrCatalog = errors.New("world: incomplete catalog")
)

// Catalog is the pre-parsed asset set a world is built from.
type Catalog struct {
	Shapes    []*sprite.Sprite
	Landmarks []Landmark
	Names     []string
	Ship      map[Direction]*sprite.Sprite
}

// Validate checks that every kind of asset is present.
func (c Catalog) Validate() error {
	if len(c.Shapes) == 0 {
		return fmt.Errorf("%w: no island shapes", ErrCatalog)
	}
	if len(c.Landmarks) == 0 {
		return fmt.Errorf("%w: no landmarks", ErrCatalog)
	}
	if len(c.Names) == 0 {
		return fmt.Errorf("%w: no island names", ErrCatalog)
	}
	for _, d := range Directions {
		if c.Ship[d] == nil {
			return fmt.Errorf("%w: no ship sprite facing %s", ErrCatalog, d)
		}
	}
	return nil
}

// Params controls world generation.
type Params struct {
	Width, Height   int
	IslandCount     int
	PlacementRadius int // half-extent of an island footprint
	LandmarkRepeats int // how many times the landmark list is dealt out
	MaxAttempts     int // per island
	ShipAnchor      core.Point
	Fog             bool
	RevealRadius    int
}

func (p Params) validate() error {
	switch {
	case p.Width <= p.PlacementRadius || p.Height <= p.PlacementRadius:
		return fmt.Errorf("world: %dx%d is too small for placement radius %d", p.Width, p.Height, p.PlacementRadius)
	case p.IslandCount < 2:
		return fmt.Errorf("world: need at least 2 islands, got %d", p.IslandCount)
	case p.MaxAttempts <= 0:
		return fmt.Errorf("world: max attempts must be positive, got %d", p.MaxAttempts)
	}
	return nil
}

// Generate builds a world and its ship from a catalog. All randomness comes
// from rng, so the same seed and inputs always produce the same world.
//
// The ship starts at the world center facing North with the fog around it
// cleared. Island names are shuffled, landmarks are dealt in catalog order,
// and every island is placed at a random spot with no solid land within the
// placement radius and clear of the ship's starting berth.
func Generate(rng *rand.Rand, p Params, cat Catalog) (*World, *Ship, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, nil, err
	}
	if len(cat.Names) < p.IslandCount {
		return nil, nil, fmt.Errorf("%w: %d names for %d islands", ErrCatalog, len(cat.Names), p.IslandCount)
	}

	var landmarks []Landmark
	for range p.LandmarkRepeats {
		landmarks = append(landmarks, cat.Landmarks...)
	}
	if len(landmarks) < p.IslandCount {
		return nil, nil, fmt.Errorf("%w: %d landmarks for %d islands", ErrCatalog, len(landmarks), p.IslandCount)
	}

	w := New(p.Width, p.Height, p.Fog)
	ship := &Ship{
		Pos:     core.Pt(p.Width/2, p.Height/2),
		Facing:  North,
		Sprites: cat.Ship,
		Anchor:  p.ShipAnchor,
	}
	w.Reveal(ship.Center(), p.RevealRadius)

	names := slices.Clone(cat.Names)
	Shuffle(rng, names)

	berth := ship.Footprint().Inset(1)
	for i := range p.IslandCount {
		pos, err := placeIsland(rng, w, p, berth)
		if err != nil {
			return nil, nil, fmt.Errorf("island %d of %d: %w", i+1, p.IslandCount, err)
		}
		w.Islands = append(w.Islands, &Island{
			Name:     names[i],
			Landmark: landmarks[i],
			Pos:      pos,
			Sprite:   cat.Shapes[rng.Intn(len(cat.Shapes))],
		})
	}

	return w, ship, nil
}

func placeIsland(rng *rand.Rand, w *World, p Params, berth core.Rect) (core.Point, error) {
	r := p.PlacementRadius
	for range p.MaxAttempts {
		pos := core.Pt(rng.Intn(p.Width-r), rng.Intn(p.Height-r))
		if _, taken := w.IslandAt(pos, r); taken {
			continue
		}
		if core.NewRect(pos.X, pos.Y, r, r).Intersects(berth) {
			continue
		}
		return pos, nil
	}
	return core.Point{}, ErrNoRoom
}

// Shuffle permutes s in place: each position i, from the first to the second
// to last, is swapped with a random position in [i, len(s)).
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := 0; i <= len(s)-2; i++ {
		j := i + rng.Intn(len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
}
