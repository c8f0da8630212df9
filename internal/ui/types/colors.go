package types

import "image/color"

var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorFieldBg       = color.RGBA{15, 15, 18, 255}
	ColorGrid          = color.RGBA{35, 35, 40, 255}
	ColorFood          = color.RGBA{220, 40, 40, 255}
	ColorSnake         = color.RGBA{40, 180, 60, 255}
	ColorText          = color.RGBA{230, 230, 230, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 230, 60, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorBorder        = color.RGBA{100, 100, 110, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 160}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
