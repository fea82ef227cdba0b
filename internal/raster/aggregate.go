package raster

import (
	"fmt"

	"github.com/ahuang11/colordropper/internal/colour"
)

// Reducer selects how a block of pixels is collapsed into one during
// aggregation.
type Reducer string

const (
	// ReducerMean averages each channel over the block.
	ReducerMean Reducer = "mean"

	// ReducerMin takes the per-channel minimum over the block.
	ReducerMin Reducer = "min"

	// ReducerMax takes the per-channel maximum over the block.
	ReducerMax Reducer = "max"
)

// ValidReducers returns the closed set of supported reducers.
func ValidReducers() []Reducer {
	return []Reducer{ReducerMean, ReducerMin, ReducerMax}
}

// ParseReducer validates a reducer name.
func ParseReducer(s string) (Reducer, error) {
	for _, r := range ValidReducers() {
		if Reducer(s) == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown reducer: %q (valid: %v)", s, ValidReducers())
}

// reducerFuncs maps each reducer to its block reduction function.
var reducerFuncs = map[Reducer]func([]colour.RGB) colour.RGB{
	ReducerMean: reduceMean,
	ReducerMin:  reduceMin,
	ReducerMax:  reduceMax,
}

// Aggregate partitions the grid into block x block tiles and reduces each
// tile to a single pixel. Trailing partial tiles are padded by replicating
// the edge pixels, so the output always covers ceil(w/block) by
// ceil(h/block) cells. The input grid is not modified; aggregation is a
// preview-only transform.
func Aggregate(g *Grid, block int, r Reducer) (*Grid, error) {
	if g == nil || g.width == 0 || g.height == 0 {
		return nil, fmt.Errorf("no grid to aggregate")
	}
	if block < 1 {
		return nil, fmt.Errorf("block size must be at least 1, got %d", block)
	}
	reduce, ok := reducerFuncs[r]
	if !ok {
		return nil, fmt.Errorf("unknown reducer: %q", r)
	}

	outW := (g.width + block - 1) / block
	outH := (g.height + block - 1) / block
	out := &Grid{
		width:  outW,
		height: outH,
		pix:    make([]colour.RGB, outW*outH),
	}

	tile := make([]colour.RGB, 0, block*block)
	for ty := 0; ty < outH; ty++ {
		for tx := 0; tx < outW; tx++ {
			tile = tile[:0]
			for dy := 0; dy < block; dy++ {
				row := ty*block + dy
				if row >= g.height {
					row = g.height - 1 // edge replication
				}
				for dx := 0; dx < block; dx++ {
					col := tx*block + dx
					if col >= g.width {
						col = g.width - 1
					}
					tile = append(tile, g.At(col, row))
				}
			}
			out.pix[ty*outW+tx] = reduce(tile)
		}
	}
	return out, nil
}

func reduceMean(pixels []colour.RGB) colour.RGB {
	var r, g, b float64
	for _, p := range pixels {
		r += float64(p.R)
		g += float64(p.G)
		b += float64(p.B)
	}
	n := float64(len(pixels))
	return colour.FromFloats(r/n, g/n, b/n)
}

func reduceMin(pixels []colour.RGB) colour.RGB {
	out := pixels[0]
	for _, p := range pixels[1:] {
		out.R = min(out.R, p.R)
		out.G = min(out.G, p.G)
		out.B = min(out.B, p.B)
	}
	return out
}

func reduceMax(pixels []colour.RGB) colour.RGB {
	out := pixels[0]
	for _, p := range pixels[1:] {
		out.R = max(out.R, p.R)
		out.G = max(out.G, p.G)
		out.B = max(out.B, p.B)
	}
	return out
}
