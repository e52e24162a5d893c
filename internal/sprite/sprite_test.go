package sprite

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ohoy/internal/core"
)

const islandSrc = `DarkGreen
  ____
 /N..$\
/______\`

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		width  int
		height int
		color  core.Color
	}{
		{"color line", islandSrc, 8, 3, core.ColorDarkGreen},
		{"no color line", "ab\nabcd\na", 4, 3, core.ColorWhite},
		{"crlf endings", "Yellow\r\n/\\\r\n\\/\r\n", 2, 2, core.ColorYellow},
		{"single row", "~~~", 3, 1, core.ColorWhite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if s.Width() != tc.width || s.Height() != tc.height {
				t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.width, tc.height)
			}
			if s.Color() != tc.color {
				t.Errorf("Color() = %v, expected %v", s.Color(), tc.color)
			}
		})
	}
}

func TestParsePadsShortRows(t *testing.T) {
	s, err := Parse("ab\nabcd")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	for x := 2; x < 4; x++ {
		if c := s.At(x, 0); c.Kind != CellBlank {
			t.Errorf("padding at (%d, 0) = %v, expected Blank", x, c.Kind)
		}
	}
	if c := s.At(3, 1); c.Kind != CellSolid || c.Glyph != 'd' {
		t.Errorf("At(3, 1) = %+v, expected solid 'd'", c)
	}
}

func TestParseClassifiesMarkers(t *testing.T) {
	s, err := Parse(islandSrc)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	tests := []struct {
		x, y  int
		kind  CellKind
		solid bool
	}{
		{0, 0, CellBlank, false},
		{2, 0, CellSolid, true},
		{2, 1, CellNameSlot, false},
		{3, 1, CellTransparent, true},
		{5, 1, CellLandmarkSlot, true},
		{7, 2, CellSolid, true},
	}

	for _, tc := range tests {
		c := s.At(tc.x, tc.y)
		if c.Kind != tc.kind {
			t.Errorf("At(%d, %d).Kind = %v, expected %v", tc.x, tc.y, c.Kind, tc.kind)
		}
		if s.Solid(tc.x, tc.y) != tc.solid {
			t.Errorf("Solid(%d, %d) = %v, expected %v", tc.x, tc.y, s.Solid(tc.x, tc.y), tc.solid)
		}
	}

	if s.Count(CellNameSlot) != 1 || s.Count(CellLandmarkSlot) != 1 {
		t.Errorf("expected one name slot and one landmark slot, got %d and %d",
			s.Count(CellNameSlot), s.Count(CellLandmarkSlot))
	}
}

func TestEveryCellDefined(t *testing.T) {
	s, err := Parse("x\n  xx\n\nxxx")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if s.Height() != 4 {
		t.Fatalf("empty rows still count: height = %d, expected 4", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.At(x, y)
			if c.Kind > CellLandmarkSlot {
				t.Errorf("undefined kind %d at (%d, %d)", c.Kind, x, y)
			}
			if c.Kind == CellBlank && c.Glyph != ' ' {
				t.Errorf("blank cell at (%d, %d) carries glyph %q", x, y, c.Glyph)
			}
		}
	}
}

func TestOutOfRangeIsBlank(t *testing.T) {
	s := MustParse("###\n###\n###")

	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 3}} {
		if s.Solid(p.X, p.Y) {
			t.Errorf("Solid(%d, %d) should be false outside the grid", p.X, p.Y)
		}
		if s.At(p.X, p.Y).Kind != CellBlank {
			t.Errorf("At(%d, %d) should be blank outside the grid", p.X, p.Y)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("Parse(\"\") error = %v, expected ErrEmpty", err)
	}
	if _, err := Parse("Green\n"); !errors.Is(err, ErrEmpty) {
		t.Errorf("color-only source error = %v, expected ErrEmpty", err)
	}
	if _, err := ParseLines([]string{"", ""}); err == nil {
		t.Error("zero-width sprite should fail")
	}
}

func TestBounds(t *testing.T) {
	s := MustParse("abc\nde")
	b := s.Bounds(core.Pt(10, 20))
	if b != core.NewRect(10, 20, 3, 2) {
		t.Errorf("Bounds = %+v, expected {10 20 3 2}", b)
	}
}
