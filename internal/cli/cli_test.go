package cli

import (
	"testing"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/render"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		x, y    float64
		wantErr bool
	}{
		{
			name: "integers",
			spec: "120,80",
			x:    120, y: 80,
		},
		{
			name: "floats with spaces",
			spec: " 1.5 , 2.25 ",
			x:    1.5, y: 2.25,
		},
		{
			name:    "missing y",
			spec:    "120",
			wantErr: true,
		},
		{
			name:    "not numeric",
			spec:    "a,b",
			wantErr: true,
		},
		{
			name:    "empty",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := parseCoordinate(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCoordinate(%q) expected error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCoordinate(%q) unexpected error: %v", tt.spec, err)
			}
			if x != tt.x || y != tt.y {
				t.Errorf("parseCoordinate(%q) = (%v, %v), want (%v, %v)", tt.spec, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestColormapFlagsApply(t *testing.T) {
	flags := colormapFlags{format: "rgb01", count: 32, blend: "lab"}
	cfg, err := flags.apply(render.DefaultConfig())
	if err != nil {
		t.Fatalf("apply() unexpected error: %v", err)
	}
	if cfg.Format != render.FormatRGBNorm {
		t.Errorf("Format = %v, want %v", cfg.Format, render.FormatRGBNorm)
	}
	if cfg.BlendSpace != colour.BlendLab {
		t.Errorf("BlendSpace = %v, want %v", cfg.BlendSpace, colour.BlendLab)
	}
	if cfg.ColormapSize != 32 {
		t.Errorf("ColormapSize = %d, want 32", cfg.ColormapSize)
	}

	// Unset flags keep the session defaults.
	cfg, err = (&colormapFlags{}).apply(render.DefaultConfig())
	if err != nil {
		t.Fatalf("apply() unexpected error: %v", err)
	}
	if cfg.Format != render.FormatHex || cfg.BlendSpace != colour.BlendRGB {
		t.Errorf("defaults changed: format %v, blend %v", cfg.Format, cfg.BlendSpace)
	}

	if _, err := (&colormapFlags{format: "bogus"}).apply(render.DefaultConfig()); err == nil {
		t.Error("apply() with invalid format expected error")
	}
	if _, err := (&colormapFlags{blend: "bogus"}).apply(render.DefaultConfig()); err == nil {
		t.Error("apply() with invalid blend space expected error")
	}
}

func TestColormapStripEmpty(t *testing.T) {
	if got := colormapStrip(nil, 40); got != "" {
		t.Errorf("colormapStrip(nil) = %q, want empty", got)
	}
	if got := colormapStrip([]string{"#ff0000"}, 0); got != "" {
		t.Errorf("colormapStrip with zero width = %q, want empty", got)
	}
}
