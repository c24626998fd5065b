package avatar

import "image/color"

func rgb(c [3]float64) color.Color {
	return color.NRGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	}
}
