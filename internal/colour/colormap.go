package colour

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColormapName is the fallback identifier used when no anchor
// colours are available for interpolation.
const DefaultColormapName = "RdBu_r"

// BlendSpace selects the colour space used for interpolation between
// anchor colours.
type BlendSpace string

const (
	// BlendRGB interpolates linearly per channel in RGB space. This is the
	// default and matches the hand-off behaviour of piecewise-linear
	// segmented colormaps.
	BlendRGB BlendSpace = "rgb"

	// BlendLab interpolates in CIE L*a*b* space for perceptually smoother
	// gradients.
	BlendLab BlendSpace = "lab"

	// BlendHCL interpolates in HCL space, preserving hue progression.
	BlendHCL BlendSpace = "hcl"
)

// ValidBlendSpaces returns the closed set of supported blend spaces.
func ValidBlendSpaces() []BlendSpace {
	return []BlendSpace{BlendRGB, BlendLab, BlendHCL}
}

// ParseBlendSpace validates a blend space name.
func ParseBlendSpace(s string) (BlendSpace, error) {
	for _, space := range ValidBlendSpaces() {
		if BlendSpace(s) == space {
			return space, nil
		}
	}
	return "", fmt.Errorf("unknown blend space: %q (valid: %v)", s, ValidBlendSpaces())
}

// Colormap interpolates n evenly-spaced colours across the anchor colours.
// Anchors are placed evenly along [0, 1] in order; each output colour is a
// blend between the two anchors bracketing its position. n is clamped so
// that n >= max(2, len(anchors)). A single anchor is duplicated so the
// interpolation is well-defined. Returns nil for an empty anchor list;
// callers fall back to DefaultColormapName.
func Colormap(anchors []RGB, n int, space BlendSpace) []RGB {
	if len(anchors) == 0 {
		return nil
	}
	if len(anchors) == 1 {
		anchors = []RGB{anchors[0], anchors[0]}
	}
	if floor := max(2, len(anchors)); n < floor {
		n = floor
	}

	out := make([]RGB, n)
	segments := len(anchors) - 1
	for i := range out {
		t := float64(i) / float64(n-1)
		// Locate the bracketing anchor pair.
		pos := t * float64(segments)
		seg := int(math.Floor(pos))
		if seg >= segments {
			seg = segments - 1
		}
		local := pos - float64(seg)
		out[i] = blend(anchors[seg], anchors[seg+1], local, space)
	}
	return out
}

// blend mixes two anchor colours at position t in [0, 1].
func blend(a, b RGB, t float64, space BlendSpace) RGB {
	switch space {
	case BlendLab, BlendHCL:
		c1 := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
		c2 := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
		var mixed colorful.Color
		if space == BlendLab {
			mixed = c1.BlendLab(c2, t).Clamped()
		} else {
			mixed = c1.BlendHcl(c2, t).Clamped()
		}
		return RGB{
			R: uint8(math.Round(mixed.R * 255)),
			G: uint8(math.Round(mixed.G * 255)),
			B: uint8(math.Round(mixed.B * 255)),
		}
	default:
		// Per-channel linear blend on the 0-255 integer scale, truncated by
		// FromFloats so anchors round-trip exactly at t=0 and t=1.
		return FromFloats(
			float64(a.R)+(float64(b.R)-float64(a.R))*t,
			float64(a.G)+(float64(b.G)-float64(a.G))*t,
			float64(a.B)+(float64(b.B)-float64(a.B))*t,
		)
	}
}
