// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Canvas is an RGBA surface with vector stroke and fill helpers.
type Canvas struct {
	Image *image.RGBA
	z     *vector.Rasterizer
}

// NewCanvas allocates a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{Image: img, z: vector.NewRasterizer(w, h)}
}

// Blit draws src with its top-left corner at `at`. Parts falling outside the
// canvas are clipped.
func (c *Canvas) Blit(src image.Image, at image.Point) {
	b := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(c.Image, r, src, b.Min, draw.Over)
}

// FillPolygon fills the closed polygon pts.
func (c *Canvas) FillPolygon(pts []f32.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.reset()
	addPolygon(c.z, pts)
	c.flush(col)
}

// Stroke draws the open polyline pts with round-ish joins.
func (c *Canvas) Stroke(pts []f32.Vec2, width float32, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	c.reset()
	addStroke(c.z, pts, width)
	c.flush(col)
}

func (c *Canvas) reset() {
	b := c.Image.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) flush(col color.Color) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{})
}

func addPolygon(z *vector.Rasterizer, pts []f32.Vec2) {
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

// addStroke emits one quad per segment plus an octagon on every vertex.
// All shapes share one winding so overlapping coverage never cancels out.
func addStroke(z *vector.Rasterizer, pts []f32.Vec2, width float32) {
	half := float64(width) / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := float64(pts[i-1][0]), float64(pts[i-1][1])
		x1, y1 := float64(pts[i][0]), float64(pts[i][1])
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
	}
	if half < 1 {
		return
	}
	for _, p := range pts {
		cx, cy := float64(p[0]), float64(p[1])
		for k := 0; k < 8; k++ {
			a := -float64(k) * math.Pi / 4
			x, y := float32(cx+half*math.Cos(a)), float32(cy+half*math.Sin(a))
			if k == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	}
}
