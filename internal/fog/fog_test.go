package fog

import (
	"testing"

	"github.com/vovakirdan/ohoy/internal/core"
)

func snapshot(m *Map) []bool {
	out := make([]bool, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			out = append(out, m.Hidden(x, y))
		}
	}
	return out
}

func TestNewIsFullyHidden(t *testing.T) {
	m := New(20, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if !m.Hidden(x, y) {
				t.Fatalf("cell (%d, %d) should start hidden", x, y)
			}
		}
	}
	if m.Revealed() != 0 {
		t.Errorf("Revealed() = %d, expected 0", m.Revealed())
	}
}

func TestRevealEllipse(t *testing.T) {
	const radius = 11
	m := New(100, 60)
	center := core.Pt(50, 30)
	m.Reveal(center, radius)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			dx, dy := x-center.X, y-center.Y
			hx := dx / 2
			inside := core.Abs(dx) <= 2*radius && core.Abs(dy) <= radius && hx*hx+dy*dy < radius*radius
			if m.Hidden(x, y) == inside {
				t.Errorf("cell (%d, %d): hidden=%v, inside ellipse=%v", x, y, m.Hidden(x, y), inside)
			}
		}
	}
}

func TestRevealShape(t *testing.T) {
	m := New(100, 60)
	m.Reveal(core.Pt(50, 30), 11)

	// Wider than tall.
	if m.Hidden(50+21, 30) {
		t.Error("21 columns right should be revealed (halved offset 10 < 11)")
	}
	if !m.Hidden(50+22, 30) {
		t.Error("22 columns right should stay hidden (halved offset 11)")
	}
	if m.Hidden(50, 30+10) {
		t.Error("10 rows down should be revealed")
	}
	if !m.Hidden(50, 30+11) {
		t.Error("11 rows down should stay hidden")
	}
	// Integer halving: -21/2 truncates to -10, same as +21.
	if m.Hidden(50-21, 30) {
		t.Error("21 columns left should mirror 21 columns right")
	}
}

func TestRevealIdempotent(t *testing.T) {
	once := New(60, 40)
	once.Reveal(core.Pt(30, 20), 7)

	twice := New(60, 40)
	twice.Reveal(core.Pt(30, 20), 7)
	changed := twice.Reveal(core.Pt(30, 20), 7)

	if changed != 0 {
		t.Errorf("second Reveal changed %d cells, expected 0", changed)
	}
	a, b := snapshot(once), snapshot(twice)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grids differ at index %d", i)
		}
	}
	if once.Revealed() != twice.Revealed() {
		t.Errorf("Revealed() %d vs %d", once.Revealed(), twice.Revealed())
	}
}

func TestRevealMonotonic(t *testing.T) {
	m := New(80, 40)
	centers := []core.Point{{X: 10, Y: 10}, {X: 40, Y: 20}, {X: 79, Y: 39}, {X: 0, Y: 0}, {X: 40, Y: 21}}

	prev := snapshot(m)
	for _, c := range centers {
		m.Reveal(c, 6)
		cur := snapshot(m)
		for i := range cur {
			if !prev[i] && cur[i] {
				t.Fatalf("cell %d was re-hidden after Reveal(%v)", i, c)
			}
		}
		prev = cur
	}
}

func TestRevealClipsAtWorldEdge(t *testing.T) {
	m := New(10, 5)
	changed := m.Reveal(core.Pt(0, 0), 11)

	if changed == 0 {
		t.Fatal("reveal at the corner should uncover in-world cells")
	}
	if changed > 10*5 {
		t.Errorf("changed %d cells in a 50-cell world", changed)
	}
	if m.Revealed() != changed {
		t.Errorf("Revealed() = %d, expected %d", m.Revealed(), changed)
	}
	if !m.Hidden(-1, 0) || !m.Hidden(0, 5) {
		t.Error("out-of-world cells always read as hidden")
	}
}

func TestRevealZeroRadius(t *testing.T) {
	m := New(5, 5)
	if m.Reveal(core.Pt(2, 2), 0) != 0 {
		t.Error("radius 0 reveals nothing")
	}
}
