package session

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/raster"
	"github.com/ahuang11/colordropper/internal/render"
)

// redImage returns PNG bytes of a size x size all-red image.
func redImage(t *testing.T, size int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func palettesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClickSampleUndoScenario(t *testing.T) {
	s := New(nil)
	if err := s.LoadImage(redImage(t, 4)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	v, ok := s.ClickAt(2, 2)
	if !ok {
		t.Fatal("click inside the image should sample")
	}
	if !palettesEqual(v.Palette, []string{"#ff0000"}) {
		t.Fatalf("palette = %v, want [#ff0000]", v.Palette)
	}
	if len(v.Swatches) != 1 {
		t.Errorf("swatch row has %d entries, want 1", len(v.Swatches))
	}
	if v.Swatches[0].Color != "#ff0000" {
		t.Errorf("swatch colour = %s, want #ff0000", v.Swatches[0].Color)
	}

	v, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if len(v.Palette) != 0 {
		t.Errorf("palette after undo = %v, want empty", v.Palette)
	}
}

func TestClickBeforeImageLoaded(t *testing.T) {
	s := New(nil)

	v, ok := s.ClickAt(1, 1)
	if ok {
		t.Error("click before image load should be a no-op")
	}
	if len(v.Palette) != 0 {
		t.Errorf("palette = %v, want empty", v.Palette)
	}
	if v.CanUndo {
		t.Error("ignored click must not push an undo snapshot")
	}
}

func TestClickOutsideGrid(t *testing.T) {
	s := New(nil)
	if err := s.LoadImage(redImage(t, 4)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if _, ok := s.ClickAt(10, 10); ok {
		t.Error("click outside grid should be a no-op")
	}
	if len(s.Palette()) != 0 {
		t.Errorf("palette = %v, want empty", s.Palette())
	}
}

func TestAddThenUndoRestoresExactly(t *testing.T) {
	s := New(nil)
	s.Add("#111111")
	s.Add("#222222")
	before := s.Palette()

	s.Add("#333333")
	v, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !palettesEqual(v.Palette, before) {
		t.Errorf("palette = %v, want %v", v.Palette, before)
	}
}

func TestRemoveAllThenUndoRestoresOrder(t *testing.T) {
	s := New(nil)
	s.Add("#aa0000")
	s.Add("#00bb00")
	s.Add("#0000cc")
	original := s.Palette()

	v := s.Remove(original)
	if len(v.Palette) != 0 {
		t.Fatalf("palette after Remove(all) = %v, want empty", v.Palette)
	}

	v, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !palettesEqual(v.Palette, original) {
		t.Errorf("palette = %v, want %v", v.Palette, original)
	}
}

func TestRemoveSubsetPreservesSurvivorOrder(t *testing.T) {
	s := New(nil)
	for _, c := range []string{"#111111", "#222222", "#333333", "#444444"} {
		s.Add(c)
	}

	v := s.Remove([]string{"#222222", "#444444"})
	if !palettesEqual(v.Palette, []string{"#111111", "#333333"}) {
		t.Errorf("palette = %v, want [#111111 #333333]", v.Palette)
	}
}

func TestSetTextFiltersInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "valid entries with whitespace",
			raw:  " #ff0000 , #00ff00,#0000ff ",
			want: []string{"#ff0000", "#00ff00", "#0000ff"},
		},
		{
			name: "invalid entries dropped",
			raw:  "#ff0000, red, #12345, #1234567, 00ff00, #GGGGGG",
			want: []string{"#ff0000"},
		},
		{
			name: "uppercase dropped",
			raw:  "#FF0000",
			want: nil,
		},
		{
			name: "empty text clears",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			v := s.SetText(tt.raw)
			if !palettesEqual(v.Palette, tt.want) {
				t.Errorf("palette = %v, want %v", v.Palette, tt.want)
			}
		})
	}
}

func TestUndoEmptyStack(t *testing.T) {
	s := New(nil)
	if _, err := s.Undo(); !errors.Is(err, ErrEmptyUndoStack) {
		t.Errorf("Undo on empty stack: error = %v, want ErrEmptyUndoStack", err)
	}

	// Exhausting the stack reproduces the error.
	s.Add("#ffffff")
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if _, err := s.Undo(); !errors.Is(err, ErrEmptyUndoStack) {
		t.Errorf("second Undo: error = %v, want ErrEmptyUndoStack", err)
	}
}

func TestClearIsUndoable(t *testing.T) {
	s := New(nil)
	s.Add("#123abc")
	v := s.Clear()
	if len(v.Palette) != 0 {
		t.Fatalf("palette after Clear = %v, want empty", v.Palette)
	}

	v, err := s.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !palettesEqual(v.Palette, []string{"#123abc"}) {
		t.Errorf("palette = %v, want [#123abc]", v.Palette)
	}
}

func TestSetConfigDoesNotTouchHistory(t *testing.T) {
	s := New(nil)
	s.Add("#abcdef")

	cfg := s.Config()
	cfg.ShowDivider = true
	cfg.Format = render.FormatRGB
	v := s.SetConfig(cfg)

	if !v.Swatches[0].ShowDivider {
		t.Error("swatches should reflect the new divider toggle")
	}
	if !palettesEqual(v.Palette, []string{"#abcdef"}) {
		t.Errorf("palette = %v, want [#abcdef]", v.Palette)
	}

	// Exactly one undo step: the Add. The config change added none.
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if _, err := s.Undo(); !errors.Is(err, ErrEmptyUndoStack) {
		t.Error("config change must not push an undo snapshot")
	}
}

func TestViewEmptyPalette(t *testing.T) {
	s := New(nil)
	v := s.View()

	if len(v.Swatches) != 1 || v.Swatches[0].Color != render.PlaceholderColour {
		t.Errorf("swatches = %+v, want single placeholder", v.Swatches)
	}
	if v.ColormapName != colour.DefaultColormapName {
		t.Errorf("colormap name = %q, want %q", v.ColormapName, colour.DefaultColormapName)
	}
	if len(v.Colormap) != 0 {
		t.Errorf("colormap = %v, want empty", v.Colormap)
	}
	if v.Text != "" {
		t.Errorf("text = %q, want empty", v.Text)
	}
}

func TestViewColormapAndSnippet(t *testing.T) {
	s := New(nil)
	s.SetText("#000000, #ffffff")

	cfg := s.Config()
	cfg.ColormapSize = 3
	v := s.SetConfig(cfg)

	want := []string{"#000000", "#7f7f7f", "#ffffff"}
	if !palettesEqual(v.Colormap, want) {
		t.Errorf("colormap = %v, want %v", v.Colormap, want)
	}
	if v.Snippet == "" {
		t.Error("snippet should be rendered")
	}
}

func TestPixelatePreviewDoesNotAffectClicks(t *testing.T) {
	s := New(nil)
	if err := s.LoadImage(redImage(t, 4)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	v, err := s.Pixelate(2, raster.ReducerMean)
	if err != nil {
		t.Fatalf("Pixelate failed: %v", err)
	}
	if v.Image.PreviewWidth != 2 || v.Image.PreviewHeight != 2 {
		t.Errorf("preview is %dx%d, want 2x2", v.Image.PreviewWidth, v.Image.PreviewHeight)
	}

	// Clicks still sample the full resolution grid.
	if _, ok := s.ClickAt(3, 3); !ok {
		t.Error("click at full-resolution coordinates should still sample")
	}

	// Block size 1 restores the full-resolution preview.
	v, err = s.Pixelate(1, raster.ReducerMean)
	if err != nil {
		t.Fatalf("Pixelate(1) failed: %v", err)
	}
	if v.Image.PreviewWidth != 0 {
		t.Errorf("preview dimensions should be cleared, got %dx%d",
			v.Image.PreviewWidth, v.Image.PreviewHeight)
	}
}

func TestLoadImageFailureKeepsState(t *testing.T) {
	s := New(nil)
	if err := s.LoadImage(redImage(t, 2)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	s.Add("#ff0000")

	err := s.LoadImage([]byte("corrupt"))
	if !errors.Is(err, raster.ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}

	if s.Grid() == nil || s.Grid().Width() != 2 {
		t.Error("previous grid should remain loaded")
	}
	if !palettesEqual(s.Palette(), []string{"#ff0000"}) {
		t.Errorf("palette = %v, want [#ff0000]", s.Palette())
	}
}

func TestSuggest(t *testing.T) {
	s := New(nil)
	if _, err := s.Suggest(4); err == nil {
		t.Error("Suggest before image load expected error")
	}

	if err := s.LoadImage(redImage(t, 4)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	v, err := s.Suggest(4)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if !palettesEqual(v.Palette, []string{"#ff0000"}) {
		t.Errorf("palette = %v, want [#ff0000]", v.Palette)
	}

	// Suggest is undoable like every palette mutation.
	v, err = s.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if len(v.Palette) != 0 {
		t.Errorf("palette after undo = %v, want empty", v.Palette)
	}
}
