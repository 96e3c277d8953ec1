package sbgn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string is not #rgb, #rrggbb or
// #rrggbbaa.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Black is the default label color.
var Black = Color{0, 0, 0, 255}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (Color, error) {
	switch len(s) {
	case 4:
		return ParseHex("#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2))
	case 7:
		return ParseHex(s)
	case 9:
		return ParseHexa(s)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// ParseHex parses an opaque #rrggbb color.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// ParseHexa parses a #rrggbbaa color.
func ParseHexa(s string) (Color, error) {
	if len(s) != 9 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex formats c as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hexa formats c as #rrggbbaa.
func (c Color) Hexa() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hexa() }

// MarshalText encodes the color as #rrggbbaa.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hexa()), nil }

// UnmarshalText accepts any form understood by [ParseColor].
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
