package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color.
// Terminals that support truecolor show it exactly; the platform layer
// lets lipgloss degrade it for the others.
type Color struct {
	R, G, B uint8
}

// ErrBadColor is returned by ParseColor for malformed input.
var ErrBadColor = errors.New("malformed color")

// Predefined colors.
var (
	ColorBlack   = RGB(0x00, 0x00, 0x00)
	ColorWhite   = RGB(0xff, 0xff, 0xff)
	ColorMagenta = RGB(0xff, 0x00, 0xff)
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "#rrggbb" or the short form "#rgb".
// The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseColor is ParseColor for compile-time constants. It panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
