package colorspace

import (
	"fmt"
	"math"
)

// RGBFromMap builds an RGB color from a decoded JSON object. The map must
// contain exactly the keys "r", "g" and "b" with integral numeric values;
// anything else fails with ErrInvalidInput. Values outside 0-255 are
// clamped.
func RGBFromMap(m map[string]any) (RGB, error) {
	if err := requireKeys(m, "r", "g", "b"); err != nil {
		return RGB{}, err
	}
	r, err := intChannel(m, "r")
	if err != nil {
		return RGB{}, err
	}
	g, err := intChannel(m, "g")
	if err != nil {
		return RGB{}, err
	}
	b, err := intChannel(m, "b")
	if err != nil {
		return RGB{}, err
	}
	return RGB{
		R: clampInt(r, 0, 255),
		G: clampInt(g, 0, 255),
		B: clampInt(b, 0, 255),
	}, nil
}

// SRGBFromMap builds a linear-light color from a decoded JSON object with
// exactly the keys "r", "g" and "b". Values outside 0-1 are clamped.
func SRGBFromMap(m map[string]any) (SRGB, error) {
	if err := requireKeys(m, "r", "g", "b"); err != nil {
		return SRGB{}, err
	}
	r, err := floatChannel(m, "r")
	if err != nil {
		return SRGB{}, err
	}
	g, err := floatChannel(m, "g")
	if err != nil {
		return SRGB{}, err
	}
	b, err := floatChannel(m, "b")
	if err != nil {
		return SRGB{}, err
	}
	return SRGB{
		R: clampFloat(r, 0, 1),
		G: clampFloat(g, 0, 1),
		B: clampFloat(b, 0, 1),
	}, nil
}

// XYZFromMap builds an XYZ color from a decoded JSON object with exactly
// the keys "x", "y" and "z".
func XYZFromMap(m map[string]any) (XYZ, error) {
	if err := requireKeys(m, "x", "y", "z"); err != nil {
		return XYZ{}, err
	}
	x, err := floatChannel(m, "x")
	if err != nil {
		return XYZ{}, err
	}
	y, err := floatChannel(m, "y")
	if err != nil {
		return XYZ{}, err
	}
	z, err := floatChannel(m, "z")
	if err != nil {
		return XYZ{}, err
	}
	return XYZ{X: x, Y: y, Z: z}, nil
}

// requireKeys checks that the map holds exactly the given keys, no more
// and no fewer.
func requireKeys(m map[string]any, keys ...string) error {
	if len(m) != len(keys) {
		return fmt.Errorf("%w: want exactly the keys %q, got %d entries", ErrInvalidInput, keys, len(m))
	}
	for _, key := range keys {
		if _, ok := m[key]; !ok {
			return fmt.Errorf("%w: missing channel %q", ErrInvalidInput, key)
		}
	}
	return nil
}

// intChannel reads an integral numeric value. JSON numbers decode as
// float64, so whole-valued floats are accepted; fractional ones are not.
func intChannel(m map[string]any, key string) (int, error) {
	switch n := m[key].(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: channel %q must be an integer, got %v", ErrInvalidInput, key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: channel %q must be numeric, got %T", ErrInvalidInput, key, m[key])
	}
}

func floatChannel(m map[string]any, key string) (float64, error) {
	switch n := m[key].(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: channel %q must be numeric, got %T", ErrInvalidInput, key, m[key])
	}
}
