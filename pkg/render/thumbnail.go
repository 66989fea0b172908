package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FitSize scales w×h to fit inside maxW×maxH keeping the aspect ratio.
// A zero bound is derived from the other one. The result is never larger
// than the input.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || (maxW <= 0 && maxH <= 0) {
		return w, h
	}
	scale := 1.0
	if maxW > 0 {
		scale = min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = min(scale, float64(maxH)/float64(h))
	}
	tw, th := int(float64(w)*scale), int(float64(h)*scale)
	return max(tw, 1), max(th, 1)
}

// Thumbnail returns an aspect-preserving downscale of src for previews.
func Thumbnail(src image.Image, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	tw, th := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
