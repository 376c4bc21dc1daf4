package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	cliimage "github.com/ixnode/cli-image"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type CLI struct {
	Path        string           `arg:"" help:"Image file to render (GIF, JPEG or PNG)." type:"existingfile"`
	Width       int              `help:"Target width in character columns." short:"w" default:"80"`
	Engine      string           `help:"Pixel backend used to decode and resize." enum:"imaging,bild" default:"imaging"`
	Transparent string           `help:"Color rendered as empty space instead of a half-block." default:"#000000"`
	Mode        string           `help:"Escape family of the output." enum:"truecolor,256" default:"truecolor"`
	Marker      []string         `help:"Add a marker at a raster position, TAG:X,Y with a hex color tag. Repeatable." placeholder:"TAG:X,Y"`
	Coordinate  []string         `help:"Add a marker at a geographic coordinate, TAG:LAT,LON. Repeatable." placeholder:"TAG:LAT,LON"`
	Markers     string           `help:"JSON file with additional markers." type:"existingfile"`
	Output      string           `help:"Write the rendered image to this file instead of stdout." short:"o"`
	Version     kong.VersionFlag `help:"Print version information and quit." short:"v"`

	placed []placement
}

func (c *CLI) Validate(kctx *kong.Context) error {
	if c.Width < 1 {
		return fmt.Errorf("invalid width: %d", c.Width)
	}

	for _, spec := range c.Marker {
		p, err := parsePlacement(spec, false)
		if err != nil {
			return err
		}
		c.placed = append(c.placed, p)
	}
	for _, spec := range c.Coordinate {
		p, err := parsePlacement(spec, true)
		if err != nil {
			return err
		}
		c.placed = append(c.placed, p)
	}

	if c.Markers != "" {
		fromFile, err := loadMarkers(c.Markers)
		if err != nil {
			return err
		}
		c.placed = append(c.placed, fromFile...)
	}

	return nil
}

func (c *CLI) Run() error {
	img, err := cliimage.New(c.Path,
		cliimage.WithWidth(c.Width),
		cliimage.WithEngine(c.Engine),
		cliimage.WithTransparent(c.Transparent),
		cliimage.WithMode(c.mode()),
	)
	if err != nil {
		return err
	}

	for _, p := range c.placed {
		if p.geographic {
			if err := img.AddCoordinate(p.tag, p.x, p.y); err != nil {
				return err
			}
		} else {
			img.AddMarker(p.tag, p.x, p.y)
		}
	}

	out, err := img.Render()
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("could not write output file %q: %w", c.Output, err)
		}
		return nil
	}

	fmt.Println(out)
	return nil
}

func (c *CLI) mode() cliimage.Mode {
	if c.Mode == "256" {
		return cliimage.Xterm256
	}
	return cliimage.TrueColor
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("cli-image"),
		kong.Description("Render raster images as colorized text on the terminal."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("cli-image %s (built %s, commit %s)", Version, BuildTime, GitCommit),
		},
	)

	if err := kctx.Run(); err != nil {
		slog.Error("rendering failed", "file", cli.Path, "error", err)
		os.Exit(1)
	}
}
