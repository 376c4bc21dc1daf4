// Package colorspace implements the numeric color conversions used by the
// renderer: hex and integer packing of 24-bit RGB values, the sRGB transfer
// function, the sRGB to CIE XYZ matrix transform, and CIE L*a*b* against the
// D65 reference white.
//
// All conversions are pure functions over plain values; the package holds no
// state and is safe for concurrent use.
//
// # Precision
//
// Conversions that produce floating point values accept a precision argument:
// the number of decimal digits the result is rounded to. The PrecisionNone
// sentinel disables rounding and returns the raw value. Rounding is applied
// to outputs only; chained conversions should pass PrecisionNone through the
// intermediate steps and round once at the end.
//
// # Ranges and Clamping
//
// Channel inputs are clamped, never rejected:
//   - RGB components to 0..255
//   - packed integers to 0x000000..0xFFFFFF
//   - sRGB components to 0..1
//   - L* to 0..100, a* and b* to -128..127
//
// XYZ carries no fixed range; out-of-gamut values are clamped when they reach
// the L*a*b* stage.
//
// # Errors
//
// Constructors that accept decoded JSON objects (RGBFromMap, SRGBFromMap,
// XYZFromMap) and the hex parser return errors wrapping ErrInvalidInput when
// the input shape is wrong: a missing or extra key, a non-numeric channel, or
// text that is not a hex number. Test with errors.Is.
package colorspace
