// Package render turns a pixel grid into colorized terminal lines.
//
// Each output character cell covers two vertically stacked pixels: the
// upper or lower half-block glyph is drawn with foreground and background
// escapes so one cell carries two colors. A configurable sentinel color
// (default "#000000") renders as empty space, and registered markers
// override the pixel color at their target cell.
//
// Output comes in two escape families: 24-bit truecolor sequences, or
// indexed sequences against the standard xterm 256-color table with
// perceptual nearest matching.
//
// The renderer holds no state between passes; every call walks the full
// grid and builds fresh lines.
package render
