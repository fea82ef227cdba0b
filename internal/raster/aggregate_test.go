package raster

import (
	"testing"

	"github.com/ahuang11/colordropper/internal/colour"
)

// gridFromRows builds a grid directly from row-major pixel rows.
func gridFromRows(rows [][]colour.RGB) *Grid {
	h := len(rows)
	w := len(rows[0])
	g := &Grid{width: w, height: h, pix: make([]colour.RGB, 0, w*h)}
	for _, row := range rows {
		g.pix = append(g.pix, row...)
	}
	return g
}

func TestAggregateMean(t *testing.T) {
	// 4x4 grid; each 2x2 block has a known channel mean.
	px := func(v uint8) colour.RGB { return colour.RGB{R: v, G: v, B: v} }
	g := gridFromRows([][]colour.RGB{
		{px(0), px(2), px(100), px(100)},
		{px(4), px(6), px(100), px(100)},
		{px(10), px(10), px(255), px(255)},
		{px(10), px(10), px(255), px(255)},
	})

	out, err := Aggregate(g, 2, ReducerMean)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Fatalf("output is %dx%d, want 2x2", out.Width(), out.Height())
	}

	tests := []struct {
		col, row int
		want     colour.RGB
	}{
		{0, 0, px(3)},   // (0+2+4+6)/4
		{1, 0, px(100)}, // uniform block
		{0, 1, px(10)},
		{1, 1, px(255)},
	}
	for _, tt := range tests {
		if got := out.At(tt.col, tt.row); got != tt.want {
			t.Errorf("At(%d, %d) = %+v, want %+v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestAggregateMinMax(t *testing.T) {
	g := gridFromRows([][]colour.RGB{
		{{R: 10, G: 200, B: 5}, {R: 20, G: 100, B: 50}},
		{{R: 30, G: 150, B: 25}, {R: 40, G: 50, B: 100}},
	})

	minOut, err := Aggregate(g, 2, ReducerMin)
	if err != nil {
		t.Fatalf("Aggregate min failed: %v", err)
	}
	if got := minOut.At(0, 0); got != (colour.RGB{R: 10, G: 50, B: 5}) {
		t.Errorf("min = %+v, want {10 50 5}", got)
	}

	maxOut, err := Aggregate(g, 2, ReducerMax)
	if err != nil {
		t.Fatalf("Aggregate max failed: %v", err)
	}
	if got := maxOut.At(0, 0); got != (colour.RGB{R: 40, G: 200, B: 100}) {
		t.Errorf("max = %+v, want {40 200 100}", got)
	}
}

func TestAggregatePartialTilesReplicateEdge(t *testing.T) {
	// 3x3 grid with block 2: trailing tiles pad by repeating edge pixels.
	px := func(v uint8) colour.RGB { return colour.RGB{R: v} }
	g := gridFromRows([][]colour.RGB{
		{px(0), px(0), px(8)},
		{px(0), px(0), px(8)},
		{px(4), px(4), px(16)},
	})

	out, err := Aggregate(g, 2, ReducerMean)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Fatalf("output is %dx%d, want 2x2", out.Width(), out.Height())
	}

	// Right column tile replicates column 2; bottom tiles replicate row 2.
	if got := out.At(1, 0); got != px(8) {
		t.Errorf("right edge tile = %+v, want {8}", got)
	}
	if got := out.At(0, 1); got != px(4) {
		t.Errorf("bottom edge tile = %+v, want {4}", got)
	}
	if got := out.At(1, 1); got != px(16) {
		t.Errorf("corner tile = %+v, want {16}", got)
	}
}

func TestAggregateErrors(t *testing.T) {
	g := gridFromRows([][]colour.RGB{{{R: 1}}})

	if _, err := Aggregate(nil, 2, ReducerMean); err == nil {
		t.Error("Aggregate(nil) expected error")
	}
	if _, err := Aggregate(g, 0, ReducerMean); err == nil {
		t.Error("Aggregate with block=0 expected error")
	}
	if _, err := Aggregate(g, 2, Reducer("median")); err == nil {
		t.Error("Aggregate with unknown reducer expected error")
	}
}

func TestParseReducer(t *testing.T) {
	for _, valid := range []string{"mean", "min", "max"} {
		if _, err := ParseReducer(valid); err != nil {
			t.Errorf("ParseReducer(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseReducer("median"); err == nil {
		t.Error("ParseReducer(\"median\") expected error")
	}
}
