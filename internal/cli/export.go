package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/session"
)

var exportColormap colormapFlags

// exportCmd renders an export snippet from colours given on the command line.
var exportCmd = &cobra.Command{
	Use:   "export <hexcode>...",
	Short: "Render the export snippet for a list of colours",
	Long: `Render the plotting-code snippet for a palette given directly on the
command line, without loading an image.

Examples:
  colordropper export '#1e1e2e' '#cdd6f4'
  colordropper export '#000000' '#ffffff' --count 256 --format rgb01`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if !colour.IsValidHexcode(arg) {
				return fmt.Errorf("invalid hexcode %q: expected '#' and six lowercase hex digits", arg)
			}
		}

		sess := session.New(newLogger().Named("session"))

		renderCfg, err := exportColormap.apply(sess.Config())
		if err != nil {
			return err
		}
		sess.SetConfig(renderCfg)

		for _, arg := range args {
			sess.Add(arg)
		}

		printView(sess.View())
		return nil
	},
}

func init() {
	exportColormap.register(exportCmd.Flags())
}
