package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PrecisionNone disables rounding of conversion results.
const PrecisionNone = -1

// ErrInvalidInput reports a malformed color value: a map with missing,
// extra or wrongly-typed channel keys, or a string that is not hex.
var ErrInvalidInput = errors.New("invalid color input")

// srgbToXYZ is the sRGB to XYZ transform matrix (D65, 2 degree observer).
var srgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// RGB is a color with 8-bit integer components (0-255).
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// SRGB is a color with linear-light components (0-1).
type SRGB struct {
	R float64 `json:"r"` // Red component (0-1)
	G float64 `json:"g"` // Green component (0-1)
	B float64 `json:"b"` // Blue component (0-1)
}

// XYZ is a color in the CIE XYZ space.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab is a color in the CIE L*a*b* space.
type Lab struct {
	L float64 `json:"l"` // Lightness (0-100)
	A float64 `json:"a"` // Green-red axis (-128-127)
	B float64 `json:"b"` // Blue-yellow axis (-128-127)
}

// RGBToHex formats a single 8-bit component as a two-digit hex string.
func RGBToHex(value int, lowercase bool) string {
	value = clampInt(value, 0, 255)
	if lowercase {
		return fmt.Sprintf("%02x", value)
	}
	return fmt.Sprintf("%02X", value)
}

// RGBToSRGB converts a single 8-bit component to linear light using the
// sRGB transfer function: values at or below the linear segment threshold
// are divided by 12.92, the rest follow the 2.4 exponent curve.
func RGBToSRGB(value int, precision int) float64 {
	v := float64(clampInt(value, 0, 255)) / 255
	if v <= 0.03928 {
		v = v / 12.92
	} else {
		v = math.Pow((v+0.055)/1.055, 2.4)
	}
	return roundTo(clampFloat(v, 0, 1), precision)
}

// XYZToLab applies the Lab companding function to a single normalized XYZ
// component: the cube root above 216/24389, the linear tangent
// 841*t/108 + 4/29 below.
func XYZToLab(value float64, precision int) float64 {
	if value > 216.0/24389.0 {
		value = math.Cbrt(value)
	} else {
		value = 841.0*value/108.0 + 4.0/29.0
	}
	return roundTo(value, precision)
}

// RGBToInt packs three 8-bit components into one integer: r*65536 + g*256 + b.
func RGBToInt(r, g, b int) int {
	r = clampInt(r, 0, 255)
	g = clampInt(g, 0, 255)
	b = clampInt(b, 0, 255)
	return r*65536 + g*256 + b
}

// IntToHex formats a packed 24-bit color as a zero-padded 6-digit hex
// string, optionally prefixed with "#".
func IntToHex(color int, prependHash, lowercase bool) string {
	color = clampInt(color, 0, 0xFFFFFF)
	format := "%06X"
	if lowercase {
		format = "%06x"
	}
	hex := fmt.Sprintf(format, color)
	if prependHash {
		hex = "#" + hex
	}
	return hex
}

// IntToRGB unpacks a 24-bit color integer into its components.
func IntToRGB(color int) RGB {
	return RGB{
		R: (color >> 16) & 0xFF,
		G: (color >> 8) & 0xFF,
		B: color & 0xFF,
	}
}

// HexToInt parses a hex color string like "ff8040" or "#FF8040" into a
// packed integer.
func HexToInt(hex string) (int, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	val, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a hex color", ErrInvalidInput, hex)
	}
	return int(val), nil
}

// Int packs the color into a single integer, equivalent to RGBToInt.
func (c RGB) Int() int {
	return RGBToInt(c.R, c.G, c.B)
}

// SRGB converts the color to linear light, applying the transfer function
// to each component.
func (c RGB) SRGB(precision int) SRGB {
	return SRGB{
		R: RGBToSRGB(c.R, precision),
		G: RGBToSRGB(c.G, precision),
		B: RGBToSRGB(c.B, precision),
	}
}

// XYZ applies the sRGB to XYZ transform matrix.
func (c SRGB) XYZ(precision int) XYZ {
	return XYZ{
		X: roundTo(srgbToXYZ[0][0]*c.R+srgbToXYZ[0][1]*c.G+srgbToXYZ[0][2]*c.B, precision),
		Y: roundTo(srgbToXYZ[1][0]*c.R+srgbToXYZ[1][1]*c.G+srgbToXYZ[1][2]*c.B, precision),
		Z: roundTo(srgbToXYZ[2][0]*c.R+srgbToXYZ[2][1]*c.G+srgbToXYZ[2][2]*c.B, precision),
	}
}

// Lab converts the color to L*a*b* against the D65 reference white.
// Results are clamped to the Lab ranges before rounding.
func (c XYZ) Lab(precision int) Lab {
	fx := XYZToLab(c.X/whiteX, PrecisionNone)
	fy := XYZToLab(c.Y/whiteY, PrecisionNone)
	fz := XYZToLab(c.Z/whiteZ, PrecisionNone)
	return Lab{
		L: roundTo(clampFloat(116*fy-16, 0, 100), precision),
		A: roundTo(clampFloat(500*(fx-fy), -128, 127), precision),
		B: roundTo(clampFloat(200*(fy-fz), -128, 127), precision),
	}
}

// roundTo rounds v to the given number of decimal digits. PrecisionNone
// (or any negative precision) returns v unchanged.
func roundTo(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	pow := math.Pow10(precision)
	return math.Round(v*pow) / pow
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
