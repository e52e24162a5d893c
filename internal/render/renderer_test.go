package render

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/ohoy/internal/core"
)

var (
	sea  = core.DrawContext{Fg: core.ColorGray, Bg: core.ColorDarkBlue}
	land = core.DrawContext{Fg: core.ColorDarkGreen, Bg: core.ColorDarkBlue}
	dark = core.DrawContext{Fg: core.ColorGray, Bg: core.ColorBlack}
)

func countDiff(a, b *core.Screen) int {
	n := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Get(x, y) != b.Get(x, y) {
				n++
			}
		}
	}
	return n
}

func TestFirstFlushPaintsEverything(t *testing.T) {
	m := NewMirror(12, 4)
	r := New(m, 12, 4)

	r.Next().Clear(sea)
	st, err := r.Flush()
	if err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if st.Cells != 12*4 {
		t.Errorf("first flush wrote %d cells, expected %d", st.Cells, 12*4)
	}
	if !m.Screen().Equal(r.Current()) {
		t.Error("mirror should match the current buffer after flush")
	}
}

func TestUnchangedFrameWritesNothing(t *testing.T) {
	m := NewMirror(10, 5)
	r := New(m, 10, 5)

	r.Next().Clear(sea)
	r.Write(core.Pt(3, 2), '#', land)
	if _, err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	m.Reset()
	r.Next().Clear(sea)
	r.Write(core.Pt(3, 2), '#', land)
	st, err := r.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if st.Cells != 0 || m.Puts != 0 {
		t.Errorf("identical frame wrote %d cells (%d puts), expected 0", st.Cells, m.Puts)
	}
	if st.Moves != 0 || st.ColorSwitch != 0 {
		t.Errorf("identical frame emitted %d moves and %d color switches", st.Moves, st.ColorSwitch)
	}
}

func TestFlushWritesExactlyDifferingCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewMirror(30, 12)
	r := New(m, 30, 12)
	glyphs := []rune{' ', '~', '#', '/', '\\'}
	ctxs := []core.DrawContext{sea, land, dark}

	for frame := 0; frame < 20; frame++ {
		r.Next().Clear(sea)
		for i := 0; i < 40; i++ {
			p := core.Pt(rng.Intn(30), rng.Intn(12))
			r.Write(p, glyphs[rng.Intn(len(glyphs))], ctxs[rng.Intn(len(ctxs))])
		}

		composed := core.NewScreen(30, 12)
		composed.CopyFrom(r.Next())
		want := countDiff(composed, r.Current())

		m.Reset()
		st, err := r.Flush()
		if err != nil {
			t.Fatal(err)
		}
		if st.Cells != want || m.Puts != want {
			t.Fatalf("frame %d: wrote %d cells (%d puts), expected %d", frame, st.Cells, m.Puts, want)
		}
		if !r.Current().Equal(composed) {
			t.Fatalf("frame %d: current buffer should equal the composed frame", frame)
		}
		if !m.Screen().Equal(composed) {
			t.Fatalf("frame %d: terminal contents diverged from the composed frame", frame)
		}
	}
}

func TestFlushSwapsByReference(t *testing.T) {
	r := New(NewMirror(4, 4), 4, 4)
	before := r.Next()

	if _, err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if r.Current() != before {
		t.Error("the composed buffer should become current without copying")
	}
	if r.Next() == before {
		t.Error("the old current buffer should become next")
	}
}

func TestColorsOnlyEmittedOnChange(t *testing.T) {
	m := NewMirror(10, 1)
	r := New(m, 10, 1)

	r.Next().Clear(sea)
	st, err := r.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if st.ColorSwitch != 2 {
		t.Errorf("uniform frame switched colors %d times, expected 2", st.ColorSwitch)
	}
	if st.Moves != 1 {
		t.Errorf("contiguous row needed %d cursor moves, expected 1", st.Moves)
	}

	r.Next().Clear(sea)
	r.Write(core.Pt(2, 0), '#', land)
	r.Write(core.Pt(6, 0), '#', land)
	st, err = r.Flush()
	if err != nil {
		t.Fatal(err)
	}
	// Only the foreground changes, and it stays changed for the second cell.
	if st.ColorSwitch != 1 {
		t.Errorf("expected a single foreground switch, got %d", st.ColorSwitch)
	}
	if st.Moves != 2 {
		t.Errorf("two separate cells need two moves, got %d", st.Moves)
	}
}

func TestInvalidateRepaints(t *testing.T) {
	m := NewMirror(8, 3)
	r := New(m, 8, 3)

	r.Next().Clear(sea)
	if _, err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	r.Invalidate()
	r.Next().Clear(sea)
	st, err := r.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if st.Cells != 8*3 {
		t.Errorf("after Invalidate wrote %d cells, expected %d", st.Cells, 8*3)
	}
}

func TestOutOfBoundsWritesDropped(t *testing.T) {
	r := New(NewMirror(5, 5), 5, 5)
	r.Next().Clear(sea)

	r.Write(core.Pt(-1, 2), '#', land)
	r.Write(core.Pt(5, 2), '#', land)
	r.Write(core.Pt(2, -1), '#', land)
	r.Write(core.Pt(2, 5), '#', land)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if r.Next().Glyph(x, y) != ' ' {
				t.Fatalf("cell (%d, %d) was written by an out-of-bounds draw", x, y)
			}
		}
	}
}

type failingTerminal struct{ Mirror }

func (f *failingTerminal) Sync() error { return errors.New("broken pipe") }

func TestFlushReportsSyncError(t *testing.T) {
	f := &failingTerminal{Mirror: *NewMirror(3, 3)}
	r := New(f, 3, 3)
	if _, err := r.Flush(); err == nil {
		t.Error("Flush should surface terminal sync errors")
	}
}
