package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ahuang11/colordropper/internal/colour"
	"github.com/ahuang11/colordropper/internal/session"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

// terminalWidth returns the usable output width.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// printView prints the palette, colormap strip and export snippet for a
// session view.
func printView(v session.View) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if len(v.Palette) == 0 {
		fmt.Println("Palette is empty.")
	} else {
		fmt.Printf("Palette (%d colours):\n", len(v.Palette))
		for i, hex := range v.Palette {
			c, _ := colour.ParseHex(hex)
			if isTTY {
				fmt.Printf("  %2d: %s\n", i+1, colour.FormatWithPreview(c, 8))
			} else {
				fmt.Printf("  %2d: %s (%s)\n", i+1, hex, c.String())
			}
		}
	}

	fmt.Println()
	if v.ColormapName != "" {
		fmt.Printf("Colormap: %s (default, no colours selected)\n", v.ColormapName)
	} else {
		fmt.Printf("Colormap (%d colours):\n", len(v.Colormap))
		if isTTY {
			fmt.Println(colormapStrip(v.Colormap, terminalWidth()))
		} else {
			fmt.Println("  " + strings.Join(v.Colormap, ", "))
		}
	}

	fmt.Println()
	fmt.Println(v.Snippet)
}

// colormapStrip renders the interpolated colormap as a solid colour bar
// filling the given width.
func colormapStrip(hexcodes []string, width int) string {
	if len(hexcodes) == 0 || width <= 0 {
		return ""
	}

	// Each terminal cell shows the colormap colour at its relative position,
	// so the bar fills the width regardless of how many colours there are.
	var sb strings.Builder
	for i := 0; i < width; i++ {
		idx := i * len(hexcodes) / width
		sb.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(hexcodes[idx])).
			Render(" "))
	}
	return sb.String()
}
