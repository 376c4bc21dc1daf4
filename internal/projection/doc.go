// Package projection maps geographic coordinates onto raster pixel
// positions. One projection is implemented, a Kavrayskiy VII style world
// map with fixed scale and recenter factors, so that every caller plots
// the same coordinate to the same pixel.
package projection
