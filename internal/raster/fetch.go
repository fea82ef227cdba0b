package raster

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ahuang11/colordropper/internal/version"
)

const (
	// userAgentName is the application name used in the User-Agent header.
	userAgentName = "colordropper"

	// DefaultFetchTimeout is the default HTTP request timeout for remote
	// image downloads.
	DefaultFetchTimeout = 10 * time.Second
)

// FetchOptions configures remote image fetch behaviour.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultFetchTimeout is used.
	Timeout time.Duration

	// CacheDir is the directory where downloaded images are cached.
	// If empty, defaults to the user cache dir under colordropper/images.
	CacheDir string

	// NoCache disables the on-disk cache and always re-downloads.
	NoCache bool
}

// Fetch retrieves image bytes from an HTTP(S) URL with context and timeout
// support. Downloads are cached on disk keyed by a hash of the URL, so
// reloading the same image does not refetch it.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cachedPath, err := cachePath(url, opts.CacheDir)
	if err == nil && !opts.NoCache {
		if data, err := os.ReadFile(cachedPath); err == nil {
			return data, nil
		}
	}

	data, err := download(ctx, url, opts.Timeout)
	if err != nil {
		return nil, err
	}

	// Cache write failures are not fatal; the bytes are already in hand.
	if cachedPath != "" && !opts.NoCache {
		if err := os.MkdirAll(filepath.Dir(cachedPath), 0o755); err == nil {
			_ = os.WriteFile(cachedPath, data, 0o644)
		}
	}

	return data, nil
}

// download performs the HTTP GET with the User-Agent header set.
func download(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", userAgentName, version.Version))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// cachePath returns the on-disk cache location for a URL.
// Uses SHA256 hash of the URL plus the original file extension.
func cachePath(url, cacheDir string) (string, error) {
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to determine cache directory: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		cacheDir = filepath.Join(base, "colordropper", "images")
	}

	hash := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", hash[:16])

	ext := filepath.Ext(url)
	if idx := strings.IndexByte(ext, '?'); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}

	return filepath.Join(cacheDir, name+ext), nil
}
