package cliimage

import (
	"fmt"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// Color component types re-exported for ColorSample consumers.
type (
	RGB  = colorspace.RGB
	SRGB = colorspace.SRGB
	XYZ  = colorspace.XYZ
	Lab  = colorspace.Lab
)

// ColorSample is one resized pixel's color in multiple representations.
type ColorSample struct {
	Hex  string `json:"hex"`  // Hexadecimal representation (#rrggbb)
	Int  int    `json:"int"`  // Packed integer representation (0xRRGGBB)
	RGB  RGB    `json:"rgb"`  // RGB channel values (0-255)
	SRGB SRGB   `json:"srgb"` // Linear sRGB channel values (0-1)
	XYZ  XYZ    `json:"xyz"`  // CIE XYZ tristimulus values
	Lab  Lab    `json:"lab"`  // CIE Lab values (D65 reference white)
}

// ColorAt samples the resized pixel at (x, y) and derives its color in
// every supported representation. Derived values are rounded to the
// precision configured with WithPrecision; each representation is
// computed from unrounded inputs.
func (im *Image) ColorAt(x, y int) (*ColorSample, error) {
	if x < 0 || x >= im.src.Width() || y < 0 || y >= im.src.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds (%dx%d)",
			x, y, im.src.Width(), im.src.Height())
	}

	hex := im.src.ColorAt(x, y)
	value, err := colorspace.HexToInt(hex)
	if err != nil {
		return nil, err
	}

	rgb := colorspace.IntToRGB(value)
	srgb := rgb.SRGB(colorspace.PrecisionNone)
	xyz := srgb.XYZ(colorspace.PrecisionNone)

	return &ColorSample{
		Hex:  hex,
		Int:  value,
		RGB:  rgb,
		SRGB: rgb.SRGB(im.cfg.precision),
		XYZ:  srgb.XYZ(im.cfg.precision),
		Lab:  xyz.Lab(im.cfg.precision),
	}, nil
}
