package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/sprite"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.Clear(core.DrawContext{})
	s.DrawText(0, 0, "~~", core.DrawContext{Fg: core.ColorCyan, Bg: core.ColorDarkBlue})
	s.DrawText(2, 0, "^^", core.DrawContext{Fg: core.ColorRed})
	s.DrawText(0, 1, "ship", core.DrawContext{})

	got := ansi.Strip(RenderScreen(s))
	want := "~~^^ \nship "
	if got != want {
		t.Errorf("RenderScreen text = %q, expected %q", got, want)
	}
	if lines := strings.Count(RenderScreen(s), "\n"); lines != 1 {
		t.Errorf("RenderScreen has %d newlines, expected 1", lines)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("too long", 3); got != "too long" {
		t.Errorf("centerText = %q, expected the text unchanged", got)
	}
}

func TestPreviewSprite(t *testing.T) {
	spr := sprite.MustParse("Green\n /#\\\nN$ .")
	s := PreviewSprite(spr, core.ColorDarkBlue)

	if got, want := s.String(), " /#\\\nN$  "; got != want {
		t.Errorf("preview = %q, expected %q", got, want)
	}
	if c := s.Get(2, 0); c.Fg != core.ColorGreen || c.Bg != core.ColorDarkBlue {
		t.Errorf("solid cell = %+v, expected green on dark blue", c)
	}
	if c := s.Get(0, 1); c.Fg != core.ColorMagenta {
		t.Errorf("name slot = %+v, expected a magenta marker", c)
	}
	if c := s.Get(0, 0); c.Fg != core.ColorGray {
		t.Errorf("blank cell = %+v, expected background", c)
	}
}
