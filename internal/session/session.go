package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/raster"
	"github.com/ahuang11/colordropper/internal/render"
)

// ErrEmptyUndoStack is returned when Undo is called with no prior mutation.
// The original tool popped the stack unguarded; here the condition is an
// explicit, recoverable error.
var ErrEmptyUndoStack = errors.New("undo stack is empty")

// Session holds the state of one picking session. It is not safe for
// concurrent use; callers handling parallel events must serialise access.
type Session struct {
	logger hclog.Logger

	palette []string
	undo    [][]string

	grid    *raster.Grid // full resolution, clicks sample this
	preview *raster.Grid // aggregated for display, nil when not pixelated

	cfg   render.Config
	fetch raster.FetchOptions
}

// New creates an empty session with the default render configuration.
func New(logger hclog.Logger) *Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Session{
		logger: logger,
		cfg:    render.DefaultConfig(),
	}
}

// SetFetchOptions configures how remote images are downloaded.
func (s *Session) SetFetchOptions(opts raster.FetchOptions) {
	s.fetch = opts
}

// ImageInfo describes the currently loaded grids.
type ImageInfo struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	PreviewWidth  int `json:"preview_width,omitempty"`
	PreviewHeight int `json:"preview_height,omitempty"`
}

// View is the full set of render projections derived from the current
// state. It is recomputed after every mutation and returned to the caller
// so the surface can re-render in one pass.
type View struct {
	Palette      []string        `json:"palette"`
	Text         string          `json:"text"`
	Swatches     []render.Swatch `json:"swatches"`
	Colormap     []string        `json:"colormap,omitempty"`
	ColormapName string          `json:"colormap_name,omitempty"`
	Snippet      string          `json:"snippet"`
	Config       render.Config   `json:"config"`
	Image        *ImageInfo      `json:"image,omitempty"`
	CanUndo      bool            `json:"can_undo"`
}

// View returns the projections for the current state.
func (s *Session) View() View {
	anchors := make([]colour.RGB, len(s.palette))
	for i, hex := range s.palette {
		// Palette entries are validated on entry, parse cannot fail.
		anchors[i], _ = colour.ParseHex(hex)
	}

	v := View{
		Palette:  snapshot(s.palette),
		Text:     strings.Join(s.palette, ", "),
		Swatches: render.SwatchRow(s.palette, s.cfg),
		Config:   s.cfg,
		CanUndo:  len(s.undo) > 0,
	}

	cmap := colour.Colormap(anchors, s.cfg.ColormapSize, s.cfg.BlendSpace)
	if cmap == nil {
		v.ColormapName = colour.DefaultColormapName
	} else {
		v.Colormap = make([]string, len(cmap))
		for i, c := range cmap {
			v.Colormap[i] = c.Hex()
		}
	}

	snippet, err := render.Snippet(cmap, s.cfg)
	if err != nil {
		s.logger.Error("failed to render snippet", "error", err)
	}
	v.Snippet = snippet

	if s.grid != nil {
		info := &ImageInfo{Width: s.grid.Width(), Height: s.grid.Height()}
		if s.preview != nil {
			info.PreviewWidth = s.preview.Width()
			info.PreviewHeight = s.preview.Height()
		}
		v.Image = info
	}

	return v
}

// Palette returns a copy of the current palette.
func (s *Session) Palette() []string {
	return snapshot(s.palette)
}

// Grid returns the full-resolution pixel grid, or nil before any load.
func (s *Session) Grid() *raster.Grid {
	return s.grid
}

// Preview returns the grid the surface should display: the aggregated
// preview when pixelation is active, otherwise the full-resolution grid.
func (s *Session) Preview() *raster.Grid {
	if s.preview != nil {
		return s.preview
	}
	return s.grid
}

// Config returns the current render configuration.
func (s *Session) Config() render.Config {
	return s.cfg
}

// pushUndo records the pre-mutation palette.
func (s *Session) pushUndo() {
	s.undo = append(s.undo, snapshot(s.palette))
}

// LoadImage decodes raster bytes and replaces the pixel grid. On decode
// failure the previous grid, preview and palette are left intact.
func (s *Session) LoadImage(data []byte) error {
	grid, err := raster.Decode(data)
	if err != nil {
		return err
	}
	s.grid = grid
	s.preview = nil
	s.logger.Debug("image loaded", "width", grid.Width(), "height", grid.Height())
	return nil
}

// LoadImageFrom loads an image from a local path or HTTP(S) URL.
func (s *Session) LoadImageFrom(ctx context.Context, path string) error {
	grid, err := raster.Load(ctx, path, s.fetch)
	if err != nil {
		return err
	}
	s.grid = grid
	s.preview = nil
	s.logger.Debug("image loaded", "source", path, "width", grid.Width(), "height", grid.Height())
	return nil
}

// ClickAt samples the full-resolution grid at (x, y) and appends the
// sampled colour to the palette. A click before an image is loaded, or
// outside the grid, is a no-op: the palette and the undo stack are left
// untouched and the second return value is false.
func (s *Session) ClickAt(x, y float64) (View, bool) {
	c, ok := s.grid.SampleAt(x, y)
	if !ok {
		s.logger.Debug("ignoring click outside grid", "x", x, "y", y)
		return s.View(), false
	}
	s.pushUndo()
	s.palette = addColour(s.palette, c.Hex())
	return s.View(), true
}

// Add appends a hexcode to the palette. Invalid hexcodes are dropped
// silently, but the snapshot is still pushed so the action is undoable.
func (s *Session) Add(hex string) View {
	s.pushUndo()
	s.palette = addColour(s.palette, hex)
	return s.View()
}

// Remove removes all entries in subset from the palette, preserving the
// relative order of the remaining colours.
func (s *Session) Remove(subset []string) View {
	s.pushUndo()
	s.palette = removeSubset(s.palette, subset)
	return s.View()
}

// Clear empties the palette.
func (s *Session) Clear() View {
	s.pushUndo()
	s.palette = nil
	return s.View()
}

// SetText replaces the palette wholesale with the comma-separated, trimmed
// and validated entries of raw. Entries failing validation are dropped
// silently.
func (s *Session) SetText(raw string) View {
	s.pushUndo()
	s.palette = parseTextList(raw)
	return s.View()
}

// Undo restores the palette to the most recent snapshot. Returns
// ErrEmptyUndoStack when no mutation has happened since the history was
// last exhausted.
func (s *Session) Undo() (View, error) {
	if len(s.undo) == 0 {
		return s.View(), ErrEmptyUndoStack
	}
	last := len(s.undo) - 1
	s.palette = s.undo[last]
	s.undo = s.undo[:last]
	return s.View(), nil
}

// SetConfig replaces the render configuration and re-renders. The palette
// and undo history are untouched: toggles are not undoable actions.
func (s *Session) SetConfig(cfg render.Config) View {
	s.cfg = cfg
	return s.View()
}

// Pixelate replaces the preview grid with a block-aggregated copy of the
// full-resolution grid. A block size of 1 or less restores the full
// resolution preview. The palette is not affected.
func (s *Session) Pixelate(block int, reducer raster.Reducer) (View, error) {
	if s.grid == nil {
		return s.View(), fmt.Errorf("no image loaded")
	}
	if block <= 1 {
		s.preview = nil
		return s.View(), nil
	}
	preview, err := raster.Aggregate(s.grid, block, reducer)
	if err != nil {
		return s.View(), err
	}
	s.preview = preview
	return s.View(), nil
}

// Suggest replaces the palette with the n most dominant colours of the
// loaded image. Like every other mutation it pushes an undo snapshot
// first.
func (s *Session) Suggest(n int) (View, error) {
	if s.grid == nil {
		return s.View(), fmt.Errorf("no image loaded")
	}
	dominant := colour.Dominant(s.grid.Pixels(), n)
	s.pushUndo()
	next := make([]string, len(dominant))
	for i, c := range dominant {
		next[i] = c.Hex()
	}
	s.palette = next
	return s.View(), nil
}
