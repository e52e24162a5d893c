package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/world"
)

// landmarkClue rules out a landmark the goal does not carry.
func landmarkClue(rng *rand.Rand, goal *world.Island, islands []*world.Island) (string, bool) {
	var names []string
	seen := map[string]bool{goal.Landmark.Name: true}
	for _, is := range islands {
		if !seen[is.Landmark.Name] {
			seen[is.Landmark.Name] = true
			names = append(names, is.Landmark.Name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	return fmt.Sprintf("The treasure is NOT located on an island with %s.", names[rng.Intn(len(names))]), true
}

// compassClue gives the goal's bearing from another island. Cells are about
// twice as tall as they are wide, so a horizontal offset counts half.
func compassClue(goal, from *world.Island) string {
	return fmt.Sprintf("The treasure island lies %s of %s.", bearing(from.Center(), goal.Center()), from.Name)
}

func bearing(from, to core.Point) world.Direction {
	d := to.Sub(from)
	if core.Abs(d.X) >= 2*core.Abs(d.Y) {
		if d.X < 0 {
			return world.West
		}
		return world.East
	}
	if d.Y < 0 {
		return world.North
	}
	return world.South
}

// clueFrom is the clue learned when porting at an island that is not the goal.
func (s *Session) clueFrom(is *world.Island) string {
	goal := s.world.Goal
	if goal == nil {
		return "The sea keeps its secrets. There is no treasure to be found."
	}
	if s.rng.Intn(2) == 0 {
		if clue, ok := landmarkClue(s.rng, goal, s.world.Islands); ok {
			return clue
		}
	}
	return compassClue(goal, is)
}
