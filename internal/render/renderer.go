package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the escape family used for cell colors.
type Mode int

const (
	// TrueColor emits 24-bit SGR sequences.
	TrueColor Mode = iota
	// Xterm256 emits indexed SGR sequences against the standard xterm
	// 256-color table.
	Xterm256
)

// DefaultTransparent is the sentinel color used when none is configured.
const DefaultTransparent = "#000000"

// ErrInvalidColorFormat reports a color token that does not reduce to six
// hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Source is the pixel grid a renderer reads. ColorAt returns hex colors;
// out-of-grid reads return the zero color.
type Source interface {
	Width() int
	Height() int
	ColorAt(x, y int) string
}

// Renderer formats a pixel grid into terminal lines. The zero value
// renders truecolor output with the default transparent sentinel.
type Renderer struct {
	// Transparent is the color rendered as empty space. Empty means
	// DefaultTransparent.
	Transparent string

	// Mode selects truecolor or indexed output.
	Mode Mode
}

// Lines renders one string per cell row. Each row covers two pixel rows;
// the count is height/2 rounded down, so an odd source height drops its
// last pixel row. Markers may be nil.
func (r *Renderer) Lines(src Source, markers *Markers) ([]string, error) {
	sentinel, err := r.sentinel()
	if err != nil {
		return nil, err
	}

	width := src.Width()
	height := src.Height()
	rows := height / 2

	p := newPainter(r.Mode)
	lines := make([]string, 0, rows)

	var sb strings.Builder
	for lineY := 0; lineY < rows; lineY++ {
		sb.Reset()
		for cellX := 0; cellX < width; cellX++ {
			top, err := halfColor(src, markers, cellX, 2*lineY)
			if err != nil {
				return nil, err
			}

			bottom := sentinel
			if 2*lineY+1 < height {
				bottom, err = halfColor(src, markers, cellX, 2*lineY+1)
				if err != nil {
					return nil, err
				}
			}

			sb.WriteString(p.cell(top, bottom, sentinel))
		}
		lines = append(lines, sb.String())
	}

	return lines, nil
}

// Render returns the rendered lines joined with newlines.
func (r *Renderer) Render(src Source, markers *Markers) (string, error) {
	lines, err := r.Lines(src, markers)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// sentinel normalizes the configured transparent color.
func (r *Renderer) sentinel() (string, error) {
	transparent := r.Transparent
	if transparent == "" {
		transparent = DefaultTransparent
	}
	return translate(transparent)
}

// halfColor resolves one pixel half: a marker on the cell overrides the
// pixel color, and either value is normalized before use.
func halfColor(src Source, markers *Markers, x, y int) (string, error) {
	raw := src.ColorAt(x, y)
	if tag, ok := markers.At(x, y); ok {
		raw = tag
	}
	return translate(raw)
}

// translate normalizes a color token to lowercase "#rrggbb" form. The
// leading "#" is optional and an 8-digit token keeps its trailing six
// digits; anything else fails with ErrInvalidColorFormat.
func translate(token string) (string, error) {
	hex := strings.TrimPrefix(token, "#")
	switch len(hex) {
	case 6:
	case 8:
		hex = hex[2:]
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, token)
	}

	hex = strings.ToLower(hex)
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, token)
	}
	return "#" + hex, nil
}
