package render

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/ahuang11/colordropper/internal/colour"
)

// snippetTemplate is the exported example code. The colour list is
// substituted as a Python list literal so the snippet can be pasted
// straight into a plotting script.
const snippetTemplate = "```" + `
import xarray as xr
import hvplot.xarray
from matplotlib.colors import LinearSegmentedColormap

da = xr.tutorial.open_dataset('air_temperature').isel(time=0)['air']
colors = {{.Colors}}

# matplotlib
cmap = LinearSegmentedColormap.from_list('custom_colormap', colors, N=len(colors))
da.plot(x='lon', y='lat', cmap=cmap)

# hvplot
da.hvplot('lon', 'lat').opts(cmap=cmap)
` + "```"

var snippetTmpl = template.Must(template.New("snippet").Parse(snippetTemplate))

// Snippet renders the export code with the given colours encoded per the
// configured format.
func Snippet(colors []colour.RGB, cfg Config) (string, error) {
	var sb strings.Builder
	err := snippetTmpl.Execute(&sb, struct{ Colors string }{Colors: EncodeList(colors, cfg.Format)})
	if err != nil {
		return "", fmt.Errorf("failed to render snippet: %w", err)
	}
	return sb.String(), nil
}

// EncodeList encodes colours as a Python list literal in the given format.
func EncodeList(colors []colour.RGB, format Format) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = encode(c, format)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func encode(c colour.RGB, format Format) string {
	switch format {
	case FormatRGB:
		return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
	case FormatRGBNorm:
		r, g, b := c.Normalised()
		return fmt.Sprintf("(%s, %s, %s)", formatFloat(r), formatFloat(g), formatFloat(b))
	default:
		return "'" + c.Hex() + "'"
	}
}

// formatFloat renders a normalised channel without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
