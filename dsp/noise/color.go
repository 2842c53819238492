package noise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned by ParseColor for unrecognized names.
var ErrUnknownColor = errors.New("noise: unknown color")

// Color names a conventional power-law exponent.
type Color int

const (
	White Color = iota
	Pink
	Red
	Brown
	Blue
	Violet
)

var colorNames = []string{"white", "pink", "red", "brown", "blue", "violet"}

// Colors lists every named color.
func Colors() []Color {
	return []Color{White, Pink, Red, Brown, Blue, Violet}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Exponent returns the power-law exponent of the color.
func (c Color) Exponent() float64 {
	switch c {
	case Pink:
		return -1
	case Red, Brown:
		return -2
	case Blue:
		return 1
	case Violet:
		return 2
	default:
		return 0
	}
}

// ParseColor resolves a color name, case-insensitively.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if n == cn {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
