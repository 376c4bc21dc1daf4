package projection

import (
	"errors"
	"testing"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantX    float64
		wantY    float64
	}{
		{"null island", 0, 0, 37, 22},
		{"new york", 40.71, -74.01, 19, 12},
		{"oslo", 59.91, 10.75, 40, 7},
		{"north pole", 90, 0, 37, 0},
		{"off raster", -90, 180, 62, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Project(Kavrayskiy7, tt.lat, tt.lon, 80, 36)
			if err != nil {
				t.Fatalf("Project failed: %v", err)
			}
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)",
					tt.lat, tt.lon, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	first, err := Project(Kavrayskiy7, 40.71, -74.01, 80, 36)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	second, err := Project(Kavrayskiy7, 40.71, -74.01, 80, 36)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated projection differs: %+v vs %+v", first, second)
	}
}

func TestProject_UnknownName(t *testing.T) {
	for _, name := range []string{"mercator", "", "KAVRAYSKIY7"} {
		t.Run(name, func(t *testing.T) {
			if _, err := Project(name, 0, 0, 80, 36); !errors.Is(err, ErrUnsupportedProjection) {
				t.Errorf("Project(%q) error = %v, want ErrUnsupportedProjection", name, err)
			}
		})
	}
}

func TestProject_MissingDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 36},
		{"zero height", 80, 0},
		{"negative width", -80, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Project(Kavrayskiy7, 0, 0, tt.width, tt.height); !errors.Is(err, ErrMissingDimensions) {
				t.Errorf("Project error = %v, want ErrMissingDimensions", err)
			}
		})
	}
}

func TestPointCell(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		wantX int
		wantY int
	}{
		{"whole", New(3, 7), 3, 7},
		{"fractional truncates", New(3.9, 7.99), 3, 7},
		{"negative truncates toward zero", New(-0.5, -0.5), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.point.Cell()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Cell() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
