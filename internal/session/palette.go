// Package session owns the picker state: the palette of selected hexcodes,
// its undo history, the loaded pixel grid, and the render configuration.
// Mutations are pure functions over the palette slice; Session is the thin
// stateful wrapper that applies them atomically and recomputes the derived
// view.
package session

import (
	"strings"

	"github.com/ahuang11/colordropper/internal/colour"
)

// addColour appends a validated hexcode to the palette. Values that do not
// match the strict '#rrggbb' shape are dropped silently and the palette is
// returned unchanged.
func addColour(palette []string, hex string) []string {
	if !colour.IsValidHexcode(hex) {
		return palette
	}
	next := make([]string, 0, len(palette)+1)
	next = append(next, palette...)
	return append(next, hex)
}

// removeSubset removes every palette entry that appears in subset,
// preserving the relative order of survivors.
func removeSubset(palette, subset []string) []string {
	drop := make(map[string]bool, len(subset))
	for _, s := range subset {
		drop[s] = true
	}
	next := make([]string, 0, len(palette))
	for _, c := range palette {
		if !drop[c] {
			next = append(next, c)
		}
	}
	return next
}

// parseTextList splits a comma-separated colour list, trims each entry and
// keeps only valid hexcodes. Invalid entries are dropped silently.
func parseTextList(raw string) []string {
	var next []string
	for _, part := range strings.Split(raw, ",") {
		c := strings.TrimSpace(part)
		if colour.IsValidHexcode(c) {
			next = append(next, c)
		}
	}
	return next
}

// snapshot returns an immutable copy of the palette for the undo stack.
func snapshot(palette []string) []string {
	copied := make([]string, len(palette))
	copy(copied, palette)
	return copied
}
