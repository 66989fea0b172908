package render

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/interp"
)

// DefaultTrailSamples is the number of points sampled along a trail curve.
const DefaultTrailSamples = 1000

// ErrInsufficientPoints is returned when a curve is requested through fewer
// than two points.
var ErrInsufficientPoints = errors.New("render: trail needs at least two points")

// TrailCurve fits an interpolating cubic spline to each axis, parameterised by
// point index, and samples it at n evenly spaced parameters. The curve passes
// through every input point.
func TrailCurve(xs, ys []float64, n int) ([]f32.Vec2, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("render: trail has %d x values and %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, ErrInsufficientPoints
	}
	if n < 2 {
		n = DefaultTrailSamples
	}

	ts := make([]float64, len(xs))
	for i := range ts {
		ts[i] = float64(i)
	}
	var fx, fy interp.NaturalCubic
	if err := fx.Fit(ts, xs); err != nil {
		return nil, fmt.Errorf("render: fit trail x: %w", err)
	}
	if err := fy.Fit(ts, ys); err != nil {
		return nil, fmt.Errorf("render: fit trail y: %w", err)
	}

	last := ts[len(ts)-1]
	out := make([]f32.Vec2, n)
	for i := range out {
		t := last * float64(i) / float64(n-1)
		out[i] = f32.Vec2{float32(fx.Predict(t)), float32(fy.Predict(t))}
	}
	return out, nil
}

// DrawTrail strokes the smoothed curve through xs/ys onto c with a darker
// under-stroke for contrast against the backdrop.
func DrawTrail(c *Canvas, xs, ys []float64, p Palette) error {
	curve, err := TrailCurve(xs, ys, DefaultTrailSamples)
	if err != nil {
		return err
	}
	c.Stroke(curve, p.TrailWidth+2, DarkenColor(p.Trail))
	c.Stroke(curve, p.TrailWidth, p.Trail)
	return nil
}
