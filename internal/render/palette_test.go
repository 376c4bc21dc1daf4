package render

import (
	"testing"

	"github.com/ixnode/cli-image/internal/colorspace"
)

func TestNearest256_ExactEntries(t *testing.T) {
	tests := []struct {
		name  string
		color colorspace.RGB
		want  int
	}{
		{"black", colorspace.RGB{}, 16},
		{"red", colorspace.RGB{R: 255}, 196},
		{"green", colorspace.RGB{G: 255}, 46},
		{"blue", colorspace.RGB{B: 255}, 21},
		{"white", colorspace.RGB{R: 255, G: 255, B: 255}, 231},
		{"cube dark red", colorspace.RGB{R: 95}, 52},
		{"gray ramp start", colorspace.RGB{R: 8, G: 8, B: 8}, 232},
		{"mid gray", colorspace.RGB{R: 128, G: 128, B: 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearest256(tt.color); got != tt.want {
				t.Errorf("nearest256(%+v) = %d, want %d", tt.color, got, tt.want)
			}
		})
	}
}

func TestNearest256_NearMisses(t *testing.T) {
	// Close to white: the cube corner is nearer than the last gray ramp
	// entry (238).
	if got := nearest256(colorspace.RGB{R: 250, G: 250, B: 250}); got != 231 {
		t.Errorf("nearest256(near white) = %d, want 231", got)
	}
}

func TestNearest256_NeverBelowOffset(t *testing.T) {
	// The sixteen theme-dependent entries must never be chosen.
	colors := []colorspace.RGB{
		{},
		{R: 128},
		{R: 192, G: 192, B: 192},
		{R: 255, G: 255},
	}
	for _, c := range colors {
		if got := nearest256(c); got < xtermOffset {
			t.Errorf("nearest256(%+v) = %d, below palette offset", c, got)
		}
	}
}

func TestLines_Xterm256Mode(t *testing.T) {
	src := &gridSource{pixels: [][]string{
		{"#ff0000"},
		{"#0000ff"},
	}}

	r := &Renderer{Mode: Xterm256}
	lines, err := r.Lines(src, nil)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}

	want := "\x1b[38;5;196m\x1b[48;5;21m▀\x1b[0m"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestLines_Xterm256TransparentHalf(t *testing.T) {
	src := &gridSource{pixels: [][]string{
		{"#000000"},
		{"#00ff00"},
	}}

	r := &Renderer{Mode: Xterm256}
	lines, err := r.Lines(src, nil)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}

	want := "\x1b[38;5;46m▄\x1b[0m"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}
