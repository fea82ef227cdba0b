// Package colour provides the colour codec and colormap interpolation used
// by the picker: conversions between hexcodes, 0-255 RGB triples and
// normalised 0-1 triples, plus ANSI swatch rendering for terminal output.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrMalformedHex is returned when a hexcode string is not a '#' followed by
// exactly six hex digits.
var ErrMalformedHex = errors.New("malformed hexcode")

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Normalised returns the three channels scaled to [0, 1] and rounded to
// 4 decimal places.
func (rgb RGB) Normalised() (r, g, b float64) {
	round := func(v uint8) float64 {
		return math.Round(float64(v)/255.0*10000) / 10000
	}
	return round(rgb.R), round(rgb.G), round(rgb.B)
}

// clampChannel clamps a float channel value to [0, 255] and truncates the
// fractional part. Truncation (rather than round-to-nearest) keeps midpoint
// interpolation results stable: the halfway blend of #000000 and #ffffff is
// #7f7f7f, not #808080.
func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(v, 255)))
}

// FromFloats builds an RGB from three float channel values in the 0-255
// range, clamping each independently.
func FromFloats(r, g, b float64) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// FromNormalised builds an RGB from three channel values in [0, 1],
// scaling by 255 before clamping.
func FromNormalised(r, g, b float64) RGB {
	return FromFloats(r*255, g*255, b*255)
}

// ParseHex parses a "#rrggbb" hexcode into an RGB. Hex digits may be upper
// or lower case; the leading '#' and six-digit length are mandatory.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[1+2*i])
		lo, ok2 := hexDigit(s[2+2*i])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, s)
		}
		channels[i] = hi<<4 | lo
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// IsValidHexcode reports whether s matches the strict palette entry shape:
// a '#' followed by six lowercase hex digits. Uppercase digits are parseable
// by ParseHex but never enter a palette.
func IsValidHexcode(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Color converts an RGB value to a color.Color with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
