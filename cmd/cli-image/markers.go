package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ixnode/cli-image/internal/colorspace"
)

// placement is a parsed marker waiting to be added to an image. For
// geographic placements x holds the latitude and y the longitude.
type placement struct {
	tag        string
	x, y       float64
	geographic bool
}

// parsePlacement parses a TAG:X,Y or TAG:LAT,LON marker spec.
func parsePlacement(spec string, geographic bool) (placement, error) {
	want := "TAG:X,Y"
	if geographic {
		want = "TAG:LAT,LON"
	}

	tag, pos, ok := strings.Cut(spec, ":")
	if !ok || tag == "" || pos == "" {
		return placement{}, fmt.Errorf("invalid marker %q, want %s", spec, want)
	}
	first, second, ok := strings.Cut(pos, ",")
	if !ok {
		return placement{}, fmt.Errorf("invalid marker %q, want %s", spec, want)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return placement{}, fmt.Errorf("invalid marker %q: %w", spec, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(second), 64)
	if err != nil {
		return placement{}, fmt.Errorf("invalid marker %q: %w", spec, err)
	}

	return placement{tag: tag, x: x, y: y, geographic: geographic}, nil
}

// markerEntry is one element of a --markers JSON document. The marker
// color comes from "tag" or from an r/g/b "color" object, its position
// from "x"/"y" raster coordinates or a "lat"/"lon" pair.
type markerEntry struct {
	Tag   string                 `json:"tag"`
	Color map[string]any `json:"color"`
	X     *float64               `json:"x"`
	Y     *float64               `json:"y"`
	Lat   *float64               `json:"lat"`
	Lon   *float64               `json:"lon"`
}

func (e markerEntry) placement() (placement, error) {
	tag := e.Tag
	if tag == "" && e.Color != nil {
		rgb, err := colorspace.RGBFromMap(e.Color)
		if err != nil {
			return placement{}, err
		}
		tag = colorspace.IntToHex(rgb.Int(), true, true)
	}
	if tag == "" {
		return placement{}, fmt.Errorf("missing tag or color")
	}

	switch {
	case e.X != nil && e.Y != nil:
		return placement{tag: tag, x: *e.X, y: *e.Y}, nil
	case e.Lat != nil && e.Lon != nil:
		return placement{tag: tag, x: *e.Lat, y: *e.Lon, geographic: true}, nil
	}
	return placement{}, fmt.Errorf("missing position, want x/y or lat/lon")
}

// loadMarkers reads marker placements from a JSON file.
func loadMarkers(path string) ([]placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read marker file %q: %w", path, err)
	}

	var entries []markerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not parse marker file %q: %w", path, err)
	}

	placements := make([]placement, 0, len(entries))
	for i, entry := range entries {
		p, err := entry.placement()
		if err != nil {
			return nil, fmt.Errorf("marker %d: %w", i, err)
		}
		placements = append(placements, p)
	}
	return placements, nil
}
