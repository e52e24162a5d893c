package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/render"
)

func TestANSITerminalSequences(t *testing.T) {
	var buf bytes.Buffer
	term := NewANSITerminal(&buf)

	term.MoveTo(4, 2)
	term.SetForeground(core.ColorRed)
	term.SetBackground(core.ColorDarkBlue)
	term.Put('#')
	term.SetForeground(core.ColorDefault)
	term.SetBackground(core.ColorDefault)
	term.Put('é')

	if buf.Len() != 0 {
		t.Fatalf("wrote %q before Sync", buf.String())
	}
	if err := term.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	got := buf.String()
	want := "\x1b[3;5H" + "\x1b[91m" + "\x1b[44m" + "#" + "\x1b[39m" + "\x1b[49m" + "é"
	if got != want {
		t.Errorf("output = %q, expected %q", got, want)
	}
}

func TestANSITerminalDrivesRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(NewANSITerminal(&buf), 6, 2)

	r.Next().Clear(core.DrawContext{Bg: core.ColorDarkBlue})
	r.Next().DrawText(1, 1, "ahoy", core.DrawContext{Fg: core.ColorYellow, Bg: core.ColorDarkBlue})
	if _, err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(buf.String(), "ahoy") {
		t.Errorf("first frame %q does not contain the text", buf.String())
	}

	buf.Reset()
	r.Next().CopyFrom(r.Current())
	r.Next().Set(2, 1, 'X', core.DrawContext{Fg: core.ColorYellow, Bg: core.ColorDarkBlue})
	if _, err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	// The row ends in a default-colored cell, so yellow is selected again.
	if got, want := buf.String(), "\x1b[2;3H\x1b[93mX"; got != want {
		t.Errorf("second frame = %q, expected %q", got, want)
	}
}

func TestANSITerminalEnterLeave(t *testing.T) {
	var buf bytes.Buffer
	term := NewANSITerminal(&buf)

	if err := term.Enter(); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	for _, seq := range []string{"\x1b[?1049h", "\x1b[2J", "\x1b[?25l"} {
		if !strings.Contains(buf.String(), seq) {
			t.Errorf("Enter output %q is missing %q", buf.String(), seq)
		}
	}

	buf.Reset()
	if err := term.Leave(); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	for _, seq := range []string{"\x1b[0m", "\x1b[?25h", "\x1b[?1049l"} {
		if !strings.Contains(buf.String(), seq) {
			t.Errorf("Leave output %q is missing %q", buf.String(), seq)
		}
	}
}
