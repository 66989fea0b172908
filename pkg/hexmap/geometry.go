// pkg/hexmap/geometry.go
package hexmap

import "math"

// markerPad inflates the player marker so its stroke does not leave
// anti-aliasing gaps against the cell edge.
const markerPad = 1.0

// SideLength returns the hex side length for an edge-to-edge width.
func SideLength(hexSize int) float64 {
	return float64(hexSize) / math.Tan(math.Pi/3)
}

// CheckStagger reports whether row g.Y is a staggered row. Staggered rows sit
// on whole multiples of the hex width; the others are shifted half a cell left.
func CheckStagger(g Coordinate) bool {
	return g.Y%2 == 0
}

// Layout converts grid coordinates to backdrop pixels for a pointy-top grid
// with every other row offset by half a cell.
type Layout struct {
	HexSize    int
	SideLength float64
	Offset     Coordinate
}

// NewLayout derives the side length from hexSize.
func NewLayout(hexSize int, offset Coordinate) Layout {
	return Layout{HexSize: hexSize, SideLength: SideLength(hexSize), Offset: offset}
}

// RowHeight is the vertical distance between two adjacent rows.
func (l Layout) RowHeight() float64 {
	return l.SideLength * 1.5
}

// GridToPixel returns the centre of cell g in backdrop pixels.
func (l Layout) GridToPixel(g Coordinate) Point {
	y := float64(g.Y)*l.RowHeight() + float64(l.Offset.Y)
	x := float64(g.X*l.HexSize + l.Offset.X)
	if !CheckStagger(g) {
		x -= 0.5 * float64(l.HexSize)
	}
	return Point{X: x, Y: y}
}

// HexPoints returns the closed outline (7 points, first repeated) of a cell
// centred on c.
func (l Layout) HexPoints(c Point) []Point {
	w := float64(l.HexSize)/2 + markerPad
	s := l.SideLength
	return []Point{
		{X: c.X - w, Y: c.Y - s/2 - markerPad},
		{X: c.X, Y: c.Y - s - markerPad},
		{X: c.X + w, Y: c.Y - s/2 - markerPad},
		{X: c.X + w, Y: c.Y + s/2 + markerPad},
		{X: c.X, Y: c.Y + s + markerPad},
		{X: c.X - w, Y: c.Y + s/2 + markerPad},
		{X: c.X - w, Y: c.Y - s/2 - markerPad},
	}
}

// Viewport is a Resolution-sized window whose centre sits on Center.
type Viewport struct {
	Resolution Coordinate
	Center     Point
}

func (v Viewport) halfExtent() Point {
	return Point{X: float64(v.Resolution.X) / 2, Y: float64(v.Resolution.Y) / 2}
}

// Frame is the top-left blit offset that puts Center in the middle of the view.
func (v Viewport) Frame() Coordinate {
	h := v.halfExtent()
	return Coordinate{
		X: int(math.Round(h.X - v.Center.X)),
		Y: int(math.Round(h.Y - v.Center.Y)),
	}
}

// Contains reports whether p lies inside the window, edges included.
func (v Viewport) Contains(p Point) bool {
	h := v.halfExtent()
	return math.Abs(p.X-v.Center.X) <= h.X && math.Abs(p.Y-v.Center.Y) <= h.Y
}

// Normalize maps a backdrop pixel into view-local pixels.
func (v Viewport) Normalize(p Point) Point {
	return p.Subtract(v.Center).Add(v.halfExtent())
}

// ViewCenter is the fixed middle of the view in view-local pixels.
func (v Viewport) ViewCenter() Point {
	return v.halfExtent()
}
