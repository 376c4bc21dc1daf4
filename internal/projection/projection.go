package projection

import (
	"errors"
	"fmt"
	"math"
)

// Names of the supported projections.
const (
	// Kavrayskiy7 compresses longitude toward the poles and keeps latitude
	// linear, which renders a pleasant world map on small rasters.
	Kavrayskiy7 = "kavrayskiy7"

	// Default is the projection used when none is configured.
	Default = Kavrayskiy7
)

var (
	// ErrUnsupportedProjection reports a projection name that is not
	// implemented.
	ErrUnsupportedProjection = errors.New("unsupported projection")

	// ErrMissingDimensions reports a geographic conversion requested
	// without valid raster dimensions.
	ErrMissingDimensions = errors.New("missing raster dimensions")
)

// Point is a position on the raster in pixel units. Fractional values are
// kept; cell lookups truncate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New returns the point at (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Cell returns the pixel cell containing the point, truncating toward
// zero.
func (p Point) Cell() (x, y int) {
	return int(p.X), int(p.Y)
}

// Supported reports whether name refers to an implemented projection.
func Supported(name string) bool {
	return name == Kavrayskiy7
}

// Project maps a geographic coordinate onto a width by height raster.
// Latitude is degrees north, longitude degrees east. The result may lie
// outside the raster; callers decide whether off-raster points matter.
func Project(name string, latitude, longitude float64, width, height int) (Point, error) {
	if !Supported(name) {
		return Point{}, fmt.Errorf("%w: %q", ErrUnsupportedProjection, name)
	}
	if width < 1 || height < 1 {
		return Point{}, fmt.Errorf("%w: got %dx%d", ErrMissingDimensions, width, height)
	}

	// Fixed oversize and recenter factors frame the world on the raster.
	widthMap := float64(width) * 1.42
	heightMap := float64(height) * 1.25
	xMove := -widthMap * 0.17
	yMove := -heightMap * 0.01

	// Kavrayskiy VII: longitude shrinks with distance from the equator.
	lon := degrees(3 * radians(longitude) / 2 * math.Sqrt(1.0/3.0-math.Pow(radians(latitude)/math.Pi, 2)))

	x := math.Round(widthMap/2 + xMove + lon*(widthMap/360))
	y := math.Round(heightMap/2 + yMove - latitude*(heightMap/180))

	return Point{X: x, Y: y}, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
