package colorspace

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRGBFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    RGB
		wantErr bool
	}{
		{"int values", map[string]any{"r": 255, "g": 128, "b": 0}, RGB{255, 128, 0}, false},
		{"json float values", map[string]any{"r": 255.0, "g": 128.0, "b": 0.0}, RGB{255, 128, 0}, false},
		{"clamped", map[string]any{"r": 300, "g": -5, "b": 64}, RGB{255, 0, 64}, false},
		{"missing key", map[string]any{"r": 1, "g": 2}, RGB{}, true},
		{"extra key", map[string]any{"r": 1, "g": 2, "b": 3, "a": 4}, RGB{}, true},
		{"wrong key", map[string]any{"r": 1, "g": 2, "x": 3}, RGB{}, true},
		{"fractional value", map[string]any{"r": 1.5, "g": 2, "b": 3}, RGB{}, true},
		{"non-numeric value", map[string]any{"r": "ff", "g": 2, "b": 3}, RGB{}, true},
		{"empty map", map[string]any{}, RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBFromMap(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("RGBFromMap() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RGBFromMap() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("RGBFromMap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBFromMap_DecodedJSON(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal([]byte(`{"r": 255, "g": 0, "b": 128}`), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	got, err := RGBFromMap(m)
	if err != nil {
		t.Fatalf("RGBFromMap() failed: %v", err)
	}
	if want := (RGB{255, 0, 128}); got != want {
		t.Errorf("RGBFromMap() = %+v, want %+v", got, want)
	}
}

func TestSRGBFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    SRGB
		wantErr bool
	}{
		{"float values", map[string]any{"r": 0.5, "g": 0.25, "b": 1.0}, SRGB{0.5, 0.25, 1}, false},
		{"int accepted", map[string]any{"r": 1, "g": 0, "b": 0}, SRGB{1, 0, 0}, false},
		{"clamped", map[string]any{"r": 1.5, "g": -0.2, "b": 0.5}, SRGB{1, 0, 0.5}, false},
		{"missing key", map[string]any{"r": 0.5, "b": 0.5}, SRGB{}, true},
		{"extra key", map[string]any{"r": 0.5, "g": 0.5, "b": 0.5, "a": 1.0}, SRGB{}, true},
		{"non-numeric value", map[string]any{"r": true, "g": 0.5, "b": 0.5}, SRGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SRGBFromMap(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("SRGBFromMap() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SRGBFromMap() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("SRGBFromMap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestXYZFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    XYZ
		wantErr bool
	}{
		{"float values", map[string]any{"x": 0.95047, "y": 1.0, "z": 1.08883}, XYZ{0.95047, 1, 1.08883}, false},
		{"out of gamut kept", map[string]any{"x": 1.5, "y": 2.0, "z": 0.0}, XYZ{1.5, 2, 0}, false},
		{"missing key", map[string]any{"x": 1.0, "y": 1.0}, XYZ{}, true},
		{"rgb keys rejected", map[string]any{"r": 1.0, "g": 1.0, "b": 1.0}, XYZ{}, true},
		{"non-numeric value", map[string]any{"x": "1", "y": 1.0, "z": 1.0}, XYZ{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XYZFromMap(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("XYZFromMap() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("XYZFromMap() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("XYZFromMap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
