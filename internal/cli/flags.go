package cli

import (
	"github.com/spf13/pflag"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/render"
)

// colormapFlags are the snippet/colormap options shared by the pick and
// export commands.
type colormapFlags struct {
	format string
	count  int
	blend  string
}

// register adds the shared flags to a command's flag set.
func (f *colormapFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.format, "format", "f", "", "snippet colour format (hex, rgb, rgb01)")
	fs.IntVarP(&f.count, "count", "n", 0, "number of interpolated colormap colours")
	fs.StringVar(&f.blend, "blend", "", "colormap blend space (rgb, lab, hcl)")
}

// apply validates the flag values and merges them into a render config.
func (f *colormapFlags) apply(cfg render.Config) (render.Config, error) {
	if f.format != "" {
		format, err := render.ParseFormat(f.format)
		if err != nil {
			return cfg, err
		}
		cfg.Format = format
	}
	if f.blend != "" {
		space, err := colour.ParseBlendSpace(f.blend)
		if err != nil {
			return cfg, err
		}
		cfg.BlendSpace = space
	}
	cfg.ColormapSize = f.count
	return cfg, nil
}
