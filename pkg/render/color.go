// pkg/render/color.go
package render

import "image/color"

// Palette holds the colours and stroke widths used to composite a map view.
type Palette struct {
	Background   color.RGBA
	Outline      color.RGBA
	Trail        color.RGBA
	Fog          color.RGBA
	Label        color.RGBA
	OutlineWidth float32
	TrailWidth   float32
}

// DefaultPalette is gold on black with a smoky fog.
var DefaultPalette = Palette{
	Background:   color.RGBA{0, 0, 0, 255},
	Outline:      color.RGBA{255, 215, 0, 255},
	Trail:        color.RGBA{255, 215, 0, 255},
	Fog:          color.RGBA{20, 20, 30, 200},
	Label:        color.RGBA{240, 240, 240, 255},
	OutlineWidth: 3,
	TrailWidth:   2,
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
