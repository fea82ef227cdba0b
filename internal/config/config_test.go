package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Listen != "127.0.0.1:8675" {
		t.Errorf("Listen = %q, want default", c.Listen)
	}
	if c.FetchTimeout.Std() != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", c.FetchTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen: 0.0.0.0:9000\nfetch_timeout: 30s\ncolormap_size: 256\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q, want 0.0.0.0:9000", c.Listen)
	}
	if c.FetchTimeout.Std() != 30*time.Second {
		t.Errorf("FetchTimeout = %v, want 30s", c.FetchTimeout)
	}
	if c.ColormapSize != 256 {
		t.Errorf("ColormapSize = %d, want 256", c.ColormapSize)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid YAML expected error")
	}
}

func TestListenEnvOverride(t *testing.T) {
	t.Setenv("COLORDROPPER_LISTEN", "127.0.0.1:7777")
	c := Default()
	if c.Listen != "127.0.0.1:7777" {
		t.Errorf("Listen = %q, want env override", c.Listen)
	}
}
