package core

import "strings"

// Color is a terminal color from the fixed sixteen-entry console palette.
// ColorDefault leaves the terminal's own default in place.
type Color uint8

// Palette entries, named after the classic console colors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault:     "Default",
	ColorBlack:       "Black",
	ColorDarkBlue:    "DarkBlue",
	ColorDarkGreen:   "DarkGreen",
	ColorDarkCyan:    "DarkCyan",
	ColorDarkRed:     "DarkRed",
	ColorDarkMagenta: "DarkMagenta",
	ColorDarkYellow:  "DarkYellow",
	ColorGray:        "Gray",
	ColorDarkGray:    "DarkGray",
	ColorBlue:        "Blue",
	ColorGreen:       "Green",
	ColorCyan:        "Cyan",
	ColorRed:         "Red",
	ColorMagenta:     "Magenta",
	ColorYellow:      "Yellow",
	ColorWhite:       "White",
}

// ansiIndex maps palette entries to ANSI 16-color indices.
var ansiIndex = [...]int{
	ColorBlack:       0,
	ColorDarkRed:     1,
	ColorDarkGreen:   2,
	ColorDarkYellow:  3,
	ColorDarkBlue:    4,
	ColorDarkMagenta: 5,
	ColorDarkCyan:    6,
	ColorGray:        7,
	ColorDarkGray:    8,
	ColorRed:         9,
	ColorGreen:       10,
	ColorYellow:      11,
	ColorBlue:        12,
	ColorMagenta:     13,
	ColorCyan:        14,
	ColorWhite:       15,
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Unknown"
}

// ANSI returns the ANSI 16-color index of c, or -1 for ColorDefault.
func (c Color) ANSI() int {
	if c == ColorDefault || int(c) >= len(ansiIndex) {
		return -1
	}
	return ansiIndex[c]
}

// ParseColor looks up a palette color by name, ignoring case and surrounding space.
func ParseColor(name string) (Color, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ColorDefault, false
	}
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// DrawContext is the color pair every draw call writes with.
type DrawContext struct {
	Fg Color
	Bg Color
}

// WithFg returns a copy of the context with a different foreground.
func (d DrawContext) WithFg(c Color) DrawContext {
	d.Fg = c
	return d
}

// WithBg returns a copy of the context with a different background.
func (d DrawContext) WithBg(c Color) DrawContext {
	d.Bg = c
	return d
}
