package game

import (
	"fmt"

	"github.com/vovakirdan/ohoy/internal/camera"
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/scene"
)

// paper is the look of every text screen.
var paper = core.DrawContext{Fg: core.ColorDarkYellow, Bg: core.ColorBlack}

// Render draws the current mode into dst, overwriting all of it.
func (s *Session) Render(dst *core.Screen) {
	switch s.mode {
	case ModeSailing:
		s.renderSea(dst)
	case ModeJournal:
		s.renderJournal(dst)
	case ModeQuitConfirm:
		s.renderQuit(dst)
	case ModeWon:
		s.renderWon(dst)
	default:
		dst.Clear(core.DrawContext{Fg: s.opts.Palette.Foreground, Bg: s.opts.Palette.Fog})
	}
}

// renderSea centers the view on the ship's top-left corner.
func (s *Session) renderSea(dst *core.Screen) {
	s.cam = camera.New(dst.Width(), dst.Height(), s.world.Width, s.world.Height)
	s.cam.Follow(s.ship.Pos)
	s.composer.Compose(dst, s.cam, scene.ViewOf(s.world, s.ship))
}

func (s *Session) renderJournal(dst *core.Screen) {
	dst.Clear(paper)
	w, h := dst.Width(), dst.Height()
	x, y := w/3, h/3

	dst.DrawText(x, y-2, "Captain's Journal", paper.WithFg(core.ColorYellow))
	clues := s.journal.Visible()
	if len(clues) == 0 {
		dst.DrawText(x, y, "No clues yet. Port at an island to gather some.", paper)
	}
	for i, clue := range clues {
		dst.DrawText(x, y+i, clue, paper)
	}

	dst.DrawText(x, footerRow(h), "Press ENTER to return to the ASCII-Sea!", paper)
	s.drawHint(dst)
}

func (s *Session) renderQuit(dst *core.Screen) {
	dst.Clear(paper)
	w, h := dst.Width(), dst.Height()
	dst.DrawText(w/3, h/2, "Do you really want to abandon your voyage?", paper)
	dst.DrawText(w/3, h/2+1, "ENTER to keep sailing, ESC to give up.", paper)
	s.drawHint(dst)
}

func (s *Session) renderWon(dst *core.Screen) {
	dst.Clear(paper)
	h := dst.Height()
	sum := s.Summary()
	dst.DrawTextCentered(h/3, fmt.Sprintf("You found the treasure on %s!", sum.Goal), paper.WithFg(core.ColorYellow))
	dst.DrawTextCentered(h/3+2, fmt.Sprintf("%d moves, %d of %d islands explored, %d clues gathered.",
		sum.Moves, sum.Explored, sum.Islands, sum.Clues), paper)
	dst.DrawTextCentered(footerRow(h), "Press any key to end the voyage.", paper)
}

func (s *Session) drawHint(dst *core.Screen) {
	if s.opts.Hint != "" {
		dst.DrawTextCentered(dst.Height()-1, s.opts.Hint, paper.WithFg(core.ColorDarkGray))
	}
}

func footerRow(h int) int {
	return min(h/2+10, h-3)
}
