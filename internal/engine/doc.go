// Package engine decodes raster images and exposes them as fixed-width
// grids of hex pixel colors.
//
// Two interchangeable backends are provided, one built on
// disintegration/imaging and one on anthonynsimon/bild. Both resize to a
// target column width with a box filter, compute the height from the
// source aspect ratio, and satisfy the same Source contract, so a
// renderer never needs to know which backend produced its pixels.
//
// Decoding accepts GIF, JPEG and PNG only. The backends' imports register
// further formats with the stdlib image registry as a side effect; those
// are rejected here by checking the detected format name.
package engine
