package cliimage

import (
	"fmt"

	"github.com/ixnode/cli-image/internal/colorspace"
	"github.com/ixnode/cli-image/internal/engine"
	"github.com/ixnode/cli-image/internal/projection"
	"github.com/ixnode/cli-image/internal/render"
)

// DefaultWidth is the target column width used when WithWidth is not given.
const DefaultWidth = 80

// Mode selects the escape family of rendered output.
type Mode = render.Mode

// Output modes accepted by WithMode.
const (
	TrueColor = render.TrueColor
	Xterm256  = render.Xterm256
)

// Engine names accepted by WithEngine.
const (
	EngineImaging = string(engine.Imaging)
	EngineBild    = string(engine.Bild)
)

// ProjectionKavrayskiy7 is the projection name accepted by WithProjection.
const ProjectionKavrayskiy7 = projection.Kavrayskiy7

// config carries the resolved construction and rendering options of an Image.
type config struct {
	width       int
	engine      engine.Name
	transparent string
	precision   int
	projection  string
	mode        Mode
}

// Option adjusts how an Image is constructed and rendered.
type Option func(*config)

func defaultConfig() config {
	return config{
		width:       DefaultWidth,
		engine:      engine.Default,
		transparent: render.DefaultTransparent,
		precision:   colorspace.PrecisionNone,
		projection:  projection.Default,
		mode:        TrueColor,
	}
}

func resolve(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !projection.Supported(cfg.projection) {
		return config{}, fmt.Errorf("%w: %q", ErrUnsupportedProjection, cfg.projection)
	}
	return cfg, nil
}

// WithWidth sets the column width the image is downsampled to.
func WithWidth(width int) Option {
	return func(c *config) { c.width = width }
}

// WithEngine selects the pixel backend, EngineImaging or EngineBild.
func WithEngine(name string) Option {
	return func(c *config) { c.engine = engine.Name(name) }
}

// WithTransparent sets the sentinel color rendered as empty space
// instead of a painted half-block.
func WithTransparent(color string) Option {
	return func(c *config) { c.transparent = color }
}

// WithPrecision sets the number of decimal digits the derived color
// representations of ColorAt are rounded to. By default values keep
// their full precision.
func WithPrecision(digits int) Option {
	return func(c *config) { c.precision = digits }
}

// WithProjection selects the map projection used by AddCoordinate.
func WithProjection(name string) Option {
	return func(c *config) { c.projection = name }
}

// WithMode selects the escape family, TrueColor or Xterm256.
func WithMode(mode Mode) Option {
	return func(c *config) { c.mode = mode }
}
