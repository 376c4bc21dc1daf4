package engine

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// imagingSource reads pixels from a disintegration/imaging resize result.
type imagingSource struct {
	img *image.NRGBA
}

func newImagingSource(img image.Image, width int) (Source, error) {
	// Height 0 lets the library compute the aspect-preserving height.
	resized := imaging.Resize(img, width, 0, imaging.Box)

	bounds := resized.Bounds()
	if bounds.Dx() != width || bounds.Dy() < 1 {
		return nil, fmt.Errorf("%w: got %dx%d for target width %d", ErrResize, bounds.Dx(), bounds.Dy(), width)
	}
	return &imagingSource{img: resized}, nil
}

func (s *imagingSource) Width() int {
	return s.img.Bounds().Dx()
}

func (s *imagingSource) Height() int {
	return s.img.Bounds().Dy()
}

func (s *imagingSource) ColorAt(x, y int) string {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return zeroColor
	}
	return colorspace.NRGBAToHex(s.img.NRGBAAt(x, y))
}
