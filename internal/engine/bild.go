package engine

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// bildSource reads pixels from a bild transform resize result.
type bildSource struct {
	img *image.RGBA
}

func newBildSource(img image.Image, width int) (Source, error) {
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("%w: empty source image", ErrResize)
	}

	// The library wants both dimensions, so compute the aspect-preserving
	// height the same way the imaging backend does.
	height := int(math.Round(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}

	resized := transform.Resize(img, width, height, transform.Box)
	if resized.Bounds().Dx() != width {
		return nil, fmt.Errorf("%w: got width %d, want %d", ErrResize, resized.Bounds().Dx(), width)
	}
	return &bildSource{img: resized}, nil
}

func (s *bildSource) Width() int {
	return s.img.Bounds().Dx()
}

func (s *bildSource) Height() int {
	return s.img.Bounds().Dy()
}

func (s *bildSource) ColorAt(x, y int) string {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return zeroColor
	}
	return colorspace.RGBAToHex(s.img.RGBAAt(x, y))
}
