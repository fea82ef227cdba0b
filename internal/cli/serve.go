package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahuang11/colordropper/internal/config"
	"github.com/ahuang11/colordropper/internal/raster"
	"github.com/ahuang11/colordropper/internal/server"
	"github.com/ahuang11/colordropper/internal/session"
)

var (
	serveListen string
	serveImage  string
)

// serveCmd starts the browser dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the colour-picking dashboard",
	Long: `Start a local web server hosting the interactive colour-picking
dashboard. Open the printed address in a browser, load an image by URL or
upload, and click on it to sample colours.

Examples:
  # Serve on the default address
  colordropper serve

  # Serve on a custom address with an image preloaded
  colordropper serve --listen 0.0.0.0:9000 --image wallpaper.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		if serveListen != "" {
			cfg.Listen = serveListen
		}
		if serveImage != "" {
			cfg.DefaultImage = serveImage
		}

		sess := session.New(logger.Named("session"))
		sess.SetFetchOptions(raster.FetchOptions{
			Timeout:  cfg.FetchTimeout.Std(),
			CacheDir: cfg.CacheDir,
		})
		if cfg.ColormapSize > 0 {
			renderCfg := sess.Config()
			renderCfg.ColormapSize = cfg.ColormapSize
			sess.SetConfig(renderCfg)
		}

		// A failing initial image load is reported but does not prevent the
		// dashboard from starting; the user can load another image there.
		if cfg.DefaultImage != "" {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout.Std())
			if err := sess.LoadImageFrom(ctx, cfg.DefaultImage); err != nil {
				logger.Warn("failed to load initial image", "source", cfg.DefaultImage, "error", err)
			}
			cancel()
		}

		srv := server.New(logger.Named("server"), sess)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start(cfg.Listen)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("received signal", "signal", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (overrides config)")
	serveCmd.Flags().StringVarP(&serveImage, "image", "i", "", "image path or URL to preload")
}
