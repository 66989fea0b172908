package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ojrac/opensimplex-go"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Fog darkens a canvas everywhere except inside a set of cleared polygons.
// Its opacity is modulated by simplex noise so it reads as cloud rather than
// a flat tint.
type Fog struct {
	noise opensimplex.Noise
	scale float64
}

// NewFog returns a Fog whose texture is fixed by seed.
func NewFog(seed int64) *Fog {
	return &Fog{noise: opensimplex.NewNormalized(seed), scale: 1.0 / 48}
}

// Draw covers c with fog. origin is the backdrop position of the canvas'
// top-left pixel, so the texture stays glued to the map as the view scrolls.
func (f *Fog) Draw(c *Canvas, clear [][]f32.Vec2, origin image.Point, col color.RGBA) {
	b := c.Image.Bounds()
	cleared := image.NewAlpha(b)
	if len(clear) > 0 {
		z := vector.NewRasterizer(b.Dx(), b.Dy())
		for _, poly := range clear {
			if len(poly) >= 3 {
				addPolygon(z, poly)
			}
		}
		z.Draw(cleared, b, image.Opaque, image.Point{})
	}

	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := f.noise.Eval2(float64(origin.X+x)*f.scale, float64(origin.Y+y)*f.scale)
			a := float64(col.A) * (0.75 + 0.25*n)
			a *= float64(255-cleared.AlphaAt(x, y).A) / 255
			mask.SetAlpha(x, y, color.Alpha{A: uint8(a)})
		}
	}

	src := image.NewUniform(color.RGBA{R: col.R, G: col.G, B: col.B, A: 255})
	draw.DrawMask(c.Image, b, src, image.Point{}, mask, b.Min, draw.Over)
}
