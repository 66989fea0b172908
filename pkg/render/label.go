package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

const labelPad = 4

// Label writes text in the top-left corner of c on a translucent backing box.
func Label(c *Canvas, text string, fg color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	w, h := float32(width+2*labelPad), float32(height+2*labelPad)
	c.FillPolygon([]f32.Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}}, color.RGBA{0, 0, 0, 160})

	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(labelPad, labelPad+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
}
