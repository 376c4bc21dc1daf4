package colorspace

import "image/color"

// NRGBAToHex formats a non-premultiplied pixel as a lowercase "#rrggbb"
// string. The alpha channel is dropped.
func NRGBAToHex(c color.NRGBA) string {
	return "#" + RGBToHex(int(c.R), true) + RGBToHex(int(c.G), true) + RGBToHex(int(c.B), true)
}

// RGBAToHex formats an alpha-premultiplied pixel as a lowercase "#rrggbb"
// string. The premultiplication is undone through the stdlib NRGBA model
// so that NRGBAToHex and RGBAToHex agree on identical colors.
func RGBAToHex(c color.RGBA) string {
	return NRGBAToHex(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// ColorToHex formats any color as a lowercase "#rrggbb" string.
func ColorToHex(c color.Color) string {
	return NRGBAToHex(color.NRGBAModel.Convert(c).(color.NRGBA))
}
