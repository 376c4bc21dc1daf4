package cliimage

import (
	"github.com/ixnode/cli-image/internal/engine"
	"github.com/ixnode/cli-image/internal/projection"
	"github.com/ixnode/cli-image/internal/render"
)

// Image is a decoded and resized raster ready for terminal rendering.
// The zero value is not usable; construct with New or NewFromBytes.
type Image struct {
	src     engine.Source
	markers *render.Markers
	cfg     config
}

// New loads the image file at path and downsamples it to the configured
// column width.
func New(path string, opts ...Option) (*Image, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	src, err := engine.Open(cfg.engine, path, cfg.width)
	if err != nil {
		return nil, err
	}
	return newImage(src, cfg), nil
}

// NewFromBytes decodes an image from an in-memory encoding and
// downsamples it to the configured column width.
func NewFromBytes(data []byte, opts ...Option) (*Image, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	src, err := engine.New(cfg.engine, data, cfg.width)
	if err != nil {
		return nil, err
	}
	return newImage(src, cfg), nil
}

func newImage(src engine.Source, cfg config) *Image {
	return &Image{
		src:     src,
		markers: render.NewMarkers(),
		cfg:     cfg,
	}
}

// Width returns the pixel width of the resized image.
func (im *Image) Width() int {
	return im.src.Width()
}

// Height returns the pixel height of the resized image. Rendered output
// has half as many lines, rounded down.
func (im *Image) Height() int {
	return im.src.Height()
}

// AddMarker places a marker at a raster position. The tag is the
// marker's color, given as a hex color string; re-adding a tag moves
// its marker. Fractional positions address the pixel containing them.
func (im *Image) AddMarker(tag string, x, y float64) {
	im.markers.Set(tag, projection.New(x, y))
}

// AddCoordinate places a marker at a geographic coordinate, projected
// onto the resized raster with the configured projection. Latitude and
// longitude are degrees, north and east positive.
func (im *Image) AddCoordinate(tag string, latitude, longitude float64) error {
	point, err := projection.Project(im.cfg.projection, latitude, longitude, im.src.Width(), im.src.Height())
	if err != nil {
		return err
	}
	im.markers.Set(tag, point)
	return nil
}

// Lines renders the image as one string per character row, each line
// covering two pixel rows. Markers placed on the image override the
// pixels they address.
func (im *Image) Lines() ([]string, error) {
	r := &render.Renderer{
		Transparent: im.cfg.transparent,
		Mode:        im.cfg.mode,
	}
	return r.Lines(im.src, im.markers)
}

// Render renders the image as a single string with lines joined by
// newlines.
func (im *Image) Render() (string, error) {
	r := &render.Renderer{
		Transparent: im.cfg.transparent,
		Mode:        im.cfg.mode,
	}
	return r.Render(im.src, im.markers)
}
