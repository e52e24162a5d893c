// Package game runs a voyage: it turns one input action at a time into at
// most one change of the world and draws the result.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ohoy/internal/camera"
	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/scene"
	"github.com/vovakirdan/ohoy/internal/world"
)

// Mode is the screen the session is showing.
type Mode int

const (
	ModeSailing Mode = iota
	ModeJournal
	ModeQuitConfirm
	ModeWon
	ModeEnded
)

func (m Mode) String() string {
	switch m {
	case ModeSailing:
		return "sailing"
	case ModeJournal:
		return "journal"
	case ModeQuitConfirm:
		return "quit-confirm"
	case ModeWon:
		return "won"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is what a single action did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // nothing changed
	OutcomeUpdated                 // screen or journal changed, world did not
	OutcomeMoved                   // ship moved and fog was revealed
	OutcomeRejected                // move blocked by land; only the heading changed
	OutcomePorted                  // ported at an island that is not the goal
	OutcomeWon                     // ported at the goal
	OutcomeEnded                   // session is over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeUpdated:
		return "updated"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	case OutcomePorted:
		return "ported"
	case OutcomeWon:
		return "won"
	case OutcomeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options are the session's tunables.
type Options struct {
	MoveRadius   int
	PortRadius   int
	RevealRadius int
	Palette      scene.Palette
	Hint         string // key help shown under overlays
	Logger       *log.Logger
}

// OptionsFromConfig maps a configuration onto session options.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	ocean, fog, fg := cfg.Palette()
	return Options{
		MoveRadius:   cfg.Interaction.MoveRadius,
		PortRadius:   cfg.Interaction.PortRadius,
		RevealRadius: cfg.Fog.RevealRadius,
		Palette:      scene.Palette{Ocean: ocean, Fog: fog, Foreground: fg},
		Logger:       logger,
	}
}

// ParamsFromConfig maps a configuration onto world generation parameters.
func ParamsFromConfig(cfg config.Config) world.Params {
	return world.Params{
		Width:           cfg.World.Width,
		Height:          cfg.World.Height,
		IslandCount:     cfg.Islands.Count,
		PlacementRadius: cfg.Islands.PlacementRadius,
		LandmarkRepeats: cfg.Islands.LandmarkRepeats,
		MaxAttempts:     cfg.Islands.MaxAttempts,
		ShipAnchor:      core.Pt(cfg.Ship.Anchor.X, cfg.Ship.Anchor.Y),
		Fog:             cfg.Fog.Enabled,
		RevealRadius:    cfg.Fog.RevealRadius,
	}
}

// generateTries bounds how often a crowded sea is rolled again.
const generateTries = 3

// New generates a world from the catalog and starts a session on it.
func New(cfg config.Config, cat world.Catalog, rng *rand.Rand, opts Options) (*Session, error) {
	var (
		w    *world.World
		ship *world.Ship
		err  error
	)
	for range generateTries {
		w, ship, err = world.Generate(rng, ParamsFromConfig(cfg), cat)
		if !errors.Is(err, world.ErrNoRoom) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("game: generate world: %w", err)
	}
	return NewSession(w, ship, rng, opts), nil
}

// Stats counts what happened during a voyage.
type Stats struct {
	Moves    int
	Rejected int
	Ports    int
}

// Session is a single voyage. It is not safe for concurrent use; the
// platform feeds it one action at a time.
type Session struct {
	world    *world.World
	ship     *world.Ship
	cam      camera.Camera
	composer scene.Composer
	rng      *rand.Rand
	opts     Options
	log      *log.Logger

	mode    Mode
	journal Journal
	stats   Stats
	found   bool
}

// NewSession starts a voyage on an existing world.
func NewSession(w *world.World, ship *world.Ship, rng *rand.Rand, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		world:    w,
		ship:     ship,
		composer: scene.NewComposer(opts.Palette),
		rng:      rng,
		opts:     opts,
		log:      logger,
		mode:     ModeSailing,
	}
}

// World returns the sea being sailed.
func (s *Session) World() *world.World { return s.world }

// Ship returns the player's ship.
func (s *Session) Ship() *world.Ship { return s.ship }

// Mode returns the current screen.
func (s *Session) Mode() Mode { return s.mode }

// Journal returns the clue journal.
func (s *Session) Journal() *Journal { return &s.journal }

// Camera returns the camera used by the last sea render.
func (s *Session) Camera() camera.Camera { return s.cam }

// Ended reports whether the session is over.
func (s *Session) Ended() bool { return s.mode == ModeEnded }

// SetHint sets the key help shown under overlays.
func (s *Session) SetHint(hint string) { s.opts.Hint = hint }

// Handle applies one action.
func (s *Session) Handle(a core.Action) Outcome {
	if a == core.ActionQuit && s.mode != ModeEnded {
		return s.end("quit")
	}

	switch s.mode {
	case ModeSailing:
		return s.sailing(a)

	case ModeJournal:
		switch a {
		case core.ActionConfirm:
			if s.journal.Typing() {
				s.journal.Finish()
				return OutcomeUpdated
			}
			s.mode = ModeSailing
			return OutcomeUpdated
		case core.ActionCancel, core.ActionJournal:
			s.journal.Finish()
			s.mode = ModeSailing
			return OutcomeUpdated
		}

	case ModeQuitConfirm:
		switch a {
		case core.ActionConfirm:
			s.mode = ModeSailing
			return OutcomeUpdated
		case core.ActionCancel:
			return s.end("abandoned")
		}

	case ModeWon:
		if a != core.ActionNone {
			s.mode = ModeEnded
			return OutcomeEnded
		}
	}
	return OutcomeIgnored
}

func (s *Session) sailing(a core.Action) Outcome {
	switch a {
	case core.ActionCancel:
		s.mode = ModeQuitConfirm
		return OutcomeUpdated
	case core.ActionJournal:
		s.journal.Finish()
		s.mode = ModeJournal
		return OutcomeUpdated
	case core.ActionInteract:
		return s.port()
	}
	if !a.IsMove() {
		return OutcomeIgnored
	}

	// The bounds keep the whole sprite for the new heading inside the world.
	pos := s.ship.Pos
	var dir world.Direction
	switch a {
	case core.ActionRight:
		if pos.X >= s.world.Width-s.ship.Sprites[world.East].Width() {
			return OutcomeIgnored
		}
		dir = world.East
	case core.ActionLeft:
		if pos.X <= 0 {
			return OutcomeIgnored
		}
		dir = world.West
	case core.ActionDown:
		if pos.Y >= s.world.Height-s.ship.Sprites[world.South].Height() {
			return OutcomeIgnored
		}
		dir = world.South
	case core.ActionUp:
		if pos.Y <= 0 {
			return OutcomeIgnored
		}
		dir = world.North
	}

	s.ship.Facing = dir
	target := s.ship.Center().Add(dir.Delta())
	if blocker, blocked := s.world.IslandAt(target, s.opts.MoveRadius); blocked {
		s.stats.Rejected++
		s.log.Debug("move rejected", "heading", dir, "island", blocker.Name, "x", target.X, "y", target.Y)
		return OutcomeRejected
	}

	s.ship.Pos = target.Sub(s.ship.Anchor)
	s.world.Reveal(target, s.opts.RevealRadius)
	s.stats.Moves++
	return OutcomeMoved
}

func (s *Session) port() Outcome {
	is, ok := s.world.IslandAt(s.ship.Center(), s.opts.PortRadius)
	if !ok {
		return OutcomeIgnored
	}
	s.stats.Ports++

	switch {
	case s.world.Goal == nil:
		s.declareGoal(is)
	case is == s.world.Goal:
		s.found = true
		s.mode = ModeWon
		s.log.Info("treasure found", "island", is.Name, "moves", s.stats.Moves)
		return OutcomeWon
	}

	s.log.Info("ported", "island", is.Name, "explored", is.Explored)
	if !is.Explored {
		is.Explored = true
		s.journal.Add(s.clueFrom(is))
	}
	s.mode = ModeJournal
	return OutcomePorted
}

// declareGoal hides the treasure on a random island other than first.
func (s *Session) declareGoal(first *world.Island) {
	candidates := slices.DeleteFunc(slices.Clone(s.world.Islands), func(is *world.Island) bool {
		return is == first
	})
	if len(candidates) == 0 {
		return
	}
	s.world.Goal = candidates[s.rng.Intn(len(candidates))]
	s.log.Info("treasure island declared", "first_port", first.Name)
}

// AdvanceJournal types one more character of the newest clue and reports
// whether more remain.
func (s *Session) AdvanceJournal() bool {
	if s.mode != ModeJournal {
		return false
	}
	return s.journal.Advance()
}

func (s *Session) end(reason string) Outcome {
	s.mode = ModeEnded
	s.log.Info("voyage ended", "reason", reason, "moves", s.stats.Moves, "found", s.found)
	return OutcomeEnded
}

// Summary describes the voyage so far.
type Summary struct {
	Stats
	Explored int
	Islands  int
	Revealed int
	Clues    int
	Goal     string
	Found    bool
}

// Summary returns the voyage totals.
func (s *Session) Summary() Summary {
	sum := Summary{
		Stats:    s.stats,
		Explored: s.world.Explored(),
		Islands:  len(s.world.Islands),
		Clues:    s.journal.Len(),
		Found:    s.found,
	}
	if s.world.Fog != nil {
		sum.Revealed = s.world.Fog.Revealed()
	}
	if s.world.Goal != nil {
		sum.Goal = s.world.Goal.Name
	}
	return sum
}
