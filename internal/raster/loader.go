package raster

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Load reads an image from a local file path or an HTTP(S) URL and decodes
// it into a Grid. Supported formats: JPEG, PNG, GIF, WebP.
func Load(ctx context.Context, path string, opts FetchOptions) (*Grid, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err := Fetch(ctx, path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		return Decode(data)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return Decode(data)
}
