package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
)

// Name selects a pixel backend.
type Name string

// The supported backends.
const (
	Imaging Name = "imaging"
	Bild    Name = "bild"

	// Default is the backend used when none is configured.
	Default = Imaging
)

var (
	// ErrUnsupportedEngine reports an unknown backend name.
	ErrUnsupportedEngine = errors.New("unsupported engine")

	// ErrDecode reports bytes that are not a valid GIF, JPEG or PNG image.
	ErrDecode = errors.New("image decode failed")

	// ErrResize reports a resize that cannot produce the requested width.
	ErrResize = errors.New("image resize failed")
)

// zeroColor is returned for reads outside the pixel grid.
const zeroColor = "#000000"

// Source is a resized image exposed as a grid of pixel colors. ColorAt
// returns the pixel at (x, y) as a lowercase "#rrggbb" string; reads
// outside the grid return "#000000".
type Source interface {
	Width() int
	Height() int
	ColorAt(x, y int) string
}

// Supported reports whether name is a known backend.
func Supported(name Name) bool {
	return name == Imaging || name == Bild
}

// New decodes raw image bytes and resizes them to the target width with
// the named backend.
func New(name Name, data []byte, width int) (Source, error) {
	if !Supported(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, name)
	}
	if width < 1 {
		return nil, fmt.Errorf("%w: target width %d", ErrResize, width)
	}

	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	if name == Bild {
		return newBildSource(img, width)
	}
	return newImagingSource(img, width)
}

// Open reads the image file at path and decodes it like New.
func Open(name Name, path string, width int) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return New(name, data, width)
}

// decode runs the stdlib registry and enforces the format whitelist. The
// registry may know more formats than we accept (the backend libraries
// register BMP and TIFF decoders on import).
func decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	switch format {
	case "gif", "jpeg", "png":
		return img, nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrDecode, format)
	}
}
