package render

import "image/color"

// paletteSize is the hue cycle length. Cell values map to hues modulo this,
// so up to 16 symbol codes get visually distinct colors before hues repeat.
const paletteSize = 16

// CellColor maps a cell value to its display color: hues spread around the
// color wheel at fixed saturation and value. Negative codes (the wildcard
// sentinel) render as a neutral gray.
func CellColor(value int) color.NRGBA {
	if value < 0 {
		return color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	}
	hue := float64(value%paletteSize) / paletteSize
	r, g, b := hsvToRGB(hue, 0.8, 0.6)
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// hsvToRGB converts HSV (h in [0,1), s and v in [0,1]) to 8-bit RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
