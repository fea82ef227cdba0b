package colour

import "sort"

// Dominant returns up to count colours ordered by how frequently they occur
// in the pixel sample. Pixels are bucketed at 4 bits per channel so near
// identical shades collapse into one entry; each returned colour is the
// channel mean of its bucket. Used by the suggest feature to seed a palette
// from an image without clicking.
func Dominant(pixels []RGB, count int) []RGB {
	if len(pixels) == 0 || count <= 0 {
		return nil
	}

	type bucket struct {
		n       int
		r, g, b int
	}
	buckets := make(map[uint16]*bucket)
	for _, p := range pixels {
		key := uint16(p.R>>4)<<8 | uint16(p.G>>4)<<4 | uint16(p.B>>4)
		bk := buckets[key]
		if bk == nil {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.n++
		bk.r += int(p.R)
		bk.g += int(p.G)
		bk.b += int(p.B)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		ordered = append(ordered, bk)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].n > ordered[j].n })

	if count > len(ordered) {
		count = len(ordered)
	}
	out := make([]RGB, count)
	for i := 0; i < count; i++ {
		bk := ordered[i]
		out[i] = RGB{
			R: uint8(bk.r / bk.n),
			G: uint8(bk.g / bk.n),
			B: uint8(bk.b / bk.n),
		}
	}
	return out
}
