package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
)

// cellStyle returns the lipgloss style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if n := fg.ANSI(); n >= 0 {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(n)))
	}
	if n := bg.ANSI(); n >= 0 {
		style = style.Background(lipgloss.Color(strconv.Itoa(n)))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for printing.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				glyph := cell.Glyph
				if glyph == 0 {
					glyph = ' '
				}
				run.WriteRune(glyph)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// PreviewSprite draws a sprite on a sea-colored background, with the name and
// landmark slots shown as their markers.
func PreviewSprite(spr *sprite.Sprite, sea core.Color) *core.Screen {
	s := core.NewScreen(spr.Width(), spr.Height())
	bg := core.DrawContext{Fg: core.ColorGray, Bg: sea}
	s.Clear(bg)

	ink := bg.WithFg(spr.Color())
	marker := bg.WithFg(core.ColorMagenta)
	for y := range spr.Height() {
		for x := range spr.Width() {
			switch cell := spr.At(x, y); cell.Kind {
			case sprite.CellSolid:
				s.Set(x, y, cell.Glyph, ink)
			case sprite.CellNameSlot:
				s.Set(x, y, sprite.NameMarker, marker)
			case sprite.CellLandmarkSlot:
				s.Set(x, y, sprite.LandmarkMarker, marker)
			case sprite.CellTransparent:
				s.Set(x, y, ' ', ink)
			}
		}
	}
	return s
}
