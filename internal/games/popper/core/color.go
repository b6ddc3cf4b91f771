package core

import "strings"

// Color is the colour of a sphere or projectile. The zero value is red.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorCount // Number of playable colours
)

// palette is indexed by Color; letters are unique so a chain can be
// written as a compact string like "RRGB".
var palette = [ColorCount]struct {
	name   string
	letter rune
}{
	ColorRed:    {"red", 'R'},
	ColorGreen:  {"green", 'G'},
	ColorBlue:   {"blue", 'B'},
	ColorYellow: {"yellow", 'Y'},
	ColorPurple: {"purple", 'P'},
}

func (c Color) valid() bool {
	return c < ColorCount
}

func (c Color) String() string {
	if !c.valid() {
		return "unknown"
	}
	return palette[c].name
}

// Char returns the palette letter of c, or '?' outside the palette.
func (c Color) Char() rune {
	if !c.valid() {
		return '?'
	}
	return palette[c].letter
}

// ParseColor accepts a colour name or its letter, in any case.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(s)
	for c := range ColorCount {
		p := palette[c]
		if s == p.name || (len(s) == 1 && rune(s[0]) == p.letter+('a'-'A')) {
			return c, true
		}
	}
	return 0, false
}

// RandSource is the random number source used for colour selection.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// RandomColor draws a uniformly random playable colour.
func RandomColor(rng RandSource) Color {
	return Color(rng.Intn(int(ColorCount)))
}
