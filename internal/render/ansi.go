package render

import (
	"fmt"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// Half-block glyphs. The upper block shows the foreground color in the
// top half of the cell, the lower block in the bottom half.
const (
	upperHalf = "▀"
	lowerHalf = "▄"
	reset     = "\x1b[0m"
)

// painter formats half-block cells for one render pass.
type painter struct {
	mode Mode
	memo map[string]int // nearest-palette cache for indexed output
}

func newPainter(mode Mode) *painter {
	p := &painter{mode: mode}
	if mode == Xterm256 {
		p.memo = make(map[string]int)
	}
	return p
}

// cell formats one terminal cell from its two pixel halves. Colors equal
// to the transparent sentinel leave that half of the cell unpainted.
func (p *painter) cell(top, bottom, transparent string) string {
	switch {
	case top == transparent && bottom == transparent:
		return " "
	case top == transparent:
		return p.fg(bottom) + lowerHalf + reset
	case bottom == transparent:
		return p.fg(top) + upperHalf + reset
	default:
		return p.fg(top) + p.bg(bottom) + upperHalf + reset
	}
}

func (p *painter) fg(hex string) string {
	if p.mode == Xterm256 {
		return fmt.Sprintf("\x1b[38;5;%dm", p.index(hex))
	}
	c := hexRGB(hex)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (p *painter) bg(hex string) string {
	if p.mode == Xterm256 {
		return fmt.Sprintf("\x1b[48;5;%dm", p.index(hex))
	}
	c := hexRGB(hex)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func (p *painter) index(hex string) int {
	if i, ok := p.memo[hex]; ok {
		return i
	}
	i := nearest256(hexRGB(hex))
	p.memo[hex] = i
	return i
}

// hexRGB splits a normalized "#rrggbb" string into components. Inputs
// reach here already validated by translate.
func hexRGB(hex string) colorspace.RGB {
	value, _ := colorspace.HexToInt(hex)
	return colorspace.IntToRGB(value)
}
