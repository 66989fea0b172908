package hexmap

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/math/f32"

	"hexmancer/pkg/render"
)

func toVecs(pts []Point) []f32.Vec2 {
	out := make([]f32.Vec2, len(pts))
	for i, p := range pts {
		out[i] = f32.Vec2{float32(p.X), float32(p.Y)}
	}
	return out
}

// Trail returns the recorded positions that fall inside the current view,
// oldest first, in view-local pixels.
func (hm *HexMap) Trail() ([]Point, error) {
	entries, err := hm.history.ReadAll()
	if err != nil {
		return nil, err
	}
	vp := hm.Viewport()
	out := make([]Point, 0, len(entries))
	for _, g := range entries {
		p := hm.layout.GridToPixel(g)
		if vp.Contains(p) {
			out = append(out, vp.Normalize(p))
		}
	}
	return out, nil
}

// clearings are the cell outlines, in view-local pixels, kept free of fog:
// the current cell and the last fogMemory recorded positions.
func (hm *HexMap) clearings() ([][]f32.Vec2, error) {
	entries, err := hm.history.ReadAll()
	if err != nil {
		return nil, err
	}
	if hm.fogMemory >= 0 && len(entries) > hm.fogMemory {
		entries = entries[len(entries)-hm.fogMemory:]
	}
	vp := hm.Viewport()
	out := [][]f32.Vec2{toVecs(hm.HexPoints())}
	for _, g := range entries {
		c := vp.Normalize(hm.layout.GridToPixel(g))
		out = append(out, toVecs(hm.layout.HexPoints(c)))
	}
	return out, nil
}

// Render composites the current view: backdrop, fog, player marker, trail
// and coordinate label. The result is exactly Resolution in size.
func (hm *HexMap) Render() (*image.RGBA, error) {
	p := hm.palette
	c := render.NewCanvas(hm.resolution.X, hm.resolution.Y, p.Background)

	frame := hm.Frame()
	c.Blit(hm.image, image.Pt(frame.X, frame.Y))

	if hm.fogFlag {
		holes, err := hm.clearings()
		if err != nil {
			return nil, fmt.Errorf("render fog: %w", err)
		}
		origin := hm.image.Bounds().Min.Sub(image.Pt(frame.X, frame.Y))
		hm.fog.Draw(c, holes, origin, p.Fog)
	}

	c.Stroke(toVecs(hm.HexPoints()), p.OutlineWidth, p.Outline)

	if hm.historyFlag {
		trail, err := hm.Trail()
		if err != nil {
			return nil, fmt.Errorf("render trail: %w", err)
		}
		xs := make([]float64, len(trail))
		ys := make([]float64, len(trail))
		for i, t := range trail {
			xs[i], ys[i] = t.X, t.Y
		}
		if err := render.DrawTrail(c, xs, ys, p); err != nil && !errors.Is(err, render.ErrInsufficientPoints) {
			return nil, fmt.Errorf("render trail: %w", err)
		}
	}

	if hm.label {
		render.Label(c, hm.locationGrid.String(), p.Label)
	}
	return c.Image, nil
}

// Dump renders the view and writes it to path as PNG for another process to
// pick up. It returns the number of bytes written.
func (hm *HexMap) Dump(path string) (int64, error) {
	img, err := hm.Render()
	if err != nil {
		return 0, err
	}
	return render.SavePNG(path, img)
}
