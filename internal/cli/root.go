// Package cli provides the command-line interface for colordropper.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ahuang11/colordropper/internal/version"
)

var (
	// Global flags
	flagVerbose    bool
	flagQuiet      bool
	flagConfigPath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colordropper",
		Short: "Pick colours from images and build colormaps",
		Long: `ColorDropper is an interactive colour-picking tool: load an image, click
points on it to sample pixel colours, and build up a palette that can be
interpolated into a continuous colormap and exported as ready-to-use
plotting code.

Run 'colordropper serve' for the browser dashboard, or use 'pick' and
'export' for one-shot terminal workflows.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger builds the application logger honouring --verbose and --quiet.
func newLogger() hclog.Logger {
	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colordropper",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
