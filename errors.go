package cliimage

import (
	"github.com/ixnode/cli-image/internal/colorspace"
	"github.com/ixnode/cli-image/internal/engine"
	"github.com/ixnode/cli-image/internal/projection"
	"github.com/ixnode/cli-image/internal/render"
)

// Error values returned by this package, re-exported so callers can
// match them with errors.Is without importing internal packages.
var (
	ErrDecode                = engine.ErrDecode
	ErrResize                = engine.ErrResize
	ErrUnsupportedEngine     = engine.ErrUnsupportedEngine
	ErrInvalidColorFormat    = render.ErrInvalidColorFormat
	ErrInvalidInput          = colorspace.ErrInvalidInput
	ErrUnsupportedProjection = projection.ErrUnsupportedProjection
	ErrMissingDimensions     = projection.ErrMissingDimensions
)
