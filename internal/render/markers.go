package render

import (
	"github.com/ixnode/cli-image/internal/projection"
)

// Markers is an ordered mapping from color tag to raster point. Tags are
// unique; setting a tag again moves its point but keeps its original
// position in the order. The renderer consults markers read-only, and
// when several markers occupy the same cell the first registered one
// wins.
type Markers struct {
	entries []markerEntry
	index   map[string]int
}

type markerEntry struct {
	tag   string
	point projection.Point
}

// NewMarkers returns an empty overlay.
func NewMarkers() *Markers {
	return &Markers{index: make(map[string]int)}
}

// Set registers the tag at the given point. An existing tag keeps its
// insertion position and only its point changes.
func (m *Markers) Set(tag string, p projection.Point) {
	if i, ok := m.index[tag]; ok {
		m.entries[i].point = p
		return
	}
	m.index[tag] = len(m.entries)
	m.entries = append(m.entries, markerEntry{tag: tag, point: p})
}

// Get returns the point registered for the tag.
func (m *Markers) Get(tag string) (projection.Point, bool) {
	if m == nil {
		return projection.Point{}, false
	}
	i, ok := m.index[tag]
	if !ok {
		return projection.Point{}, false
	}
	return m.entries[i].point, true
}

// Len returns the number of registered markers.
func (m *Markers) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Tags returns the registered tags in insertion order.
func (m *Markers) Tags() []string {
	if m == nil {
		return nil
	}
	tags := make([]string, len(m.entries))
	for i, e := range m.entries {
		tags[i] = e.tag
	}
	return tags
}

// At returns the first tag whose point truncates to the given cell.
func (m *Markers) At(x, y int) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, e := range m.entries {
		px, py := e.point.Cell()
		if px == x && py == y {
			return e.tag, true
		}
	}
	return "", false
}
