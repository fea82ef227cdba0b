// ColorDropper - an interactive image colour picker
//
// ColorDropper samples pixel colours from images, builds palettes and
// interpolated colormaps, and exports ready-to-use plotting code.
package main

import (
	"github.com/ahuang11/colordropper/internal/cli"
)

func main() {
	cli.Execute()
}
