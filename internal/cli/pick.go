package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahuang11/colordropper/internal/raster"
	"github.com/ahuang11/colordropper/internal/session"
)

var (
	pickAt       []string
	pickSuggest  int
	pickPixelate int
	pickReducer  string
	pickColormap colormapFlags
)

// pickCmd samples colours from an image without the dashboard.
var pickCmd = &cobra.Command{
	Use:   "pick <image>",
	Short: "Sample colours from an image at given coordinates",
	Long: `Sample pixel colours from an image and print the resulting palette,
colormap and export snippet. The image can be a local file or an HTTP(S)
URL. Coordinates use plot orientation: x selects a column, y a row, with
y=0 at the bottom of the image.

Examples:
  # Sample two points
  colordropper pick wallpaper.jpg --at 120,80 --at 400,360

  # Let the tool suggest the 8 most dominant colours
  colordropper pick wallpaper.jpg --suggest 8

  # Pixelate preview aggregation before sampling output
  colordropper pick wallpaper.jpg --at 10,10 --pixelate 8 --reducer max`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		sess := session.New(logger.Named("session"))
		if err := sess.LoadImageFrom(cmd.Context(), args[0]); err != nil {
			return err
		}

		renderCfg, err := pickColormap.apply(sess.Config())
		if err != nil {
			return err
		}
		sess.SetConfig(renderCfg)

		if pickPixelate > 1 {
			reducer, err := raster.ParseReducer(pickReducer)
			if err != nil {
				return err
			}
			if _, err := sess.Pixelate(pickPixelate, reducer); err != nil {
				return err
			}
		}

		if pickSuggest > 0 {
			if _, err := sess.Suggest(pickSuggest); err != nil {
				return err
			}
		}

		for _, spec := range pickAt {
			x, y, err := parseCoordinate(spec)
			if err != nil {
				return err
			}
			if _, ok := sess.ClickAt(x, y); !ok {
				logger.Warn("coordinate outside image, skipped", "at", spec)
			}
		}

		printView(sess.View())
		return nil
	},
}

// parseCoordinate parses an "x,y" flag value.
func parseCoordinate(spec string) (x, y float64, err error) {
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate %q: expected x,y", spec)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid coordinate %q: %w", spec, err)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid coordinate %q: %w", spec, err)
	}
	return x, y, nil
}

func init() {
	pickCmd.Flags().StringArrayVar(&pickAt, "at", nil, "coordinate to sample as x,y (repeatable)")
	pickCmd.Flags().IntVar(&pickSuggest, "suggest", 0, "seed the palette with the N most dominant colours")
	pickCmd.Flags().IntVar(&pickPixelate, "pixelate", 0, "aggregate the preview into NxN pixel blocks")
	pickCmd.Flags().StringVar(&pickReducer, "reducer", "mean", "pixelation reducer (mean, min, max)")
	pickColormap.register(pickCmd.Flags())
}
