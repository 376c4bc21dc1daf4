package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// xtermOffset is the index of the first palette entry used for matching.
// The sixteen colors below it depend on the user's terminal theme, so
// only the 6x6x6 cube and the grayscale ramp take part.
const xtermOffset = 16

// xterm256 holds the cube (indexes 16-231) and the grayscale ramp
// (232-255) of the standard xterm palette.
var xterm256 = buildXterm256()

func buildXterm256() []colorful.Color {
	palette := make([]colorful.Color, 0, 240)

	levels := []float64{0, 95, 135, 175, 215, 255}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				palette = append(palette, colorful.Color{R: r / 255, G: g / 255, B: b / 255})
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := float64(8 + 10*i)
		palette = append(palette, colorful.Color{R: v / 255, G: v / 255, B: v / 255})
	}

	return palette
}

// nearest256 returns the xterm palette index perceptually closest to the
// color, by CIE Lab distance. Ties keep the lowest index.
func nearest256(c colorspace.RGB) int {
	target := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}

	best := 0
	bestDist := math.MaxFloat64
	for i, entry := range xterm256 {
		if d := target.DistanceLab(entry); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return xtermOffset + best
}
