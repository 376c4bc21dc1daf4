// Package cliimage renders raster images as colorized terminal text.
//
// An image is decoded, downsampled to a target column width, and written
// as text lines in which one character cell covers two vertically stacked
// pixels: a half-block glyph paints the top and bottom halves in separate
// colors through ANSI escapes. Pixels matching a configurable transparent
// sentinel (black by default) stay unpainted, so irregular shapes keep
// their silhouette on the terminal background.
//
// # Basic Usage
//
//	img, err := cliimage.New("world.png", cliimage.WithWidth(120))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := img.Render()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Markers
//
// Colored markers overlay single pixels, addressed either by raster
// position or by geographic coordinate:
//
//	img.AddMarker("#ff0000", 12, 7)
//	err = img.AddCoordinate("#00ff00", 59.91, 10.75) // Oslo
//
// Geographic coordinates are projected against the resized raster, so
// the same coordinate lands on the same cell for every render of that
// image.
//
// # Engines
//
// Two pixel backends are available, selected with WithEngine: "imaging"
// (the default, disintegration/imaging) and "bild" (anthonynsimon/bild).
// Both resize with a box filter and produce identical colors for
// identical inputs; GIF, JPEG and PNG sources are accepted.
//
// # Output Modes
//
// The default output uses 24-bit truecolor escapes. WithMode(Xterm256)
// switches to indexed escapes against the standard xterm 256-color
// table for terminals without truecolor support.
package cliimage
