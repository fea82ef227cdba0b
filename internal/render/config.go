// Package render computes the derived views of a palette: the swatch row,
// the interpolated colormap, and the exported code snippet.
package render

import (
	"fmt"

	"github.com/ahuang11/colordropper/internal/colour"
)

// Format selects the textual encoding of colours in the export snippet.
type Format string

const (
	// FormatHex encodes colours as '#rrggbb' strings.
	FormatHex Format = "hex"

	// FormatRGB encodes colours as (r, g, b) tuples of 0-255 integers.
	FormatRGB Format = "rgb"

	// FormatRGBNorm encodes colours as (r, g, b) tuples normalised to 0-1.
	FormatRGBNorm Format = "rgb01"
)

// ValidFormats returns the closed set of supported output formats.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatRGB, FormatRGBNorm}
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range ValidFormats() {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %q (valid: %v)", s, ValidFormats())
}

// Config holds the render toggles and output selectors. It is pure
// configuration: changing it re-renders the projections without touching
// the palette or its undo history.
type Config struct {
	// ShowDivider draws a divider between adjacent swatches.
	ShowDivider bool `json:"show_divider"`

	// EmbedValues overlays each swatch with its hexcode text.
	EmbedValues bool `json:"embed_values"`

	// Highlight gives the embedded text a contrasting background.
	Highlight bool `json:"highlight"`

	// Format selects the colour encoding used in the export snippet.
	Format Format `json:"format"`

	// BlendSpace selects the interpolation space for the colormap.
	BlendSpace colour.BlendSpace `json:"blend_space"`

	// ColormapSize is the requested number of interpolated colours. It is
	// clamped so the colormap always has at least max(2, len(palette))
	// entries.
	ColormapSize int `json:"colormap_size"`
}

// DefaultConfig returns the initial render configuration.
func DefaultConfig() Config {
	return Config{
		Format:     FormatHex,
		BlendSpace: colour.BlendRGB,
	}
}
