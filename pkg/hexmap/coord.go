// pkg/hexmap/coord.go
package hexmap

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Coordinate.Div for a zero divisor.
var ErrDivideByZero = errors.New("hexmap: divide by zero")

// Coordinate is an integer pair. It addresses grid cells (X column, Y row)
// and also carries resolutions and offsets. All operations return new values.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the componentwise sum.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Subtract returns the componentwise difference.
func (c Coordinate) Subtract(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// Multiply returns the componentwise product.
func (c Coordinate) Multiply(other Coordinate) Coordinate {
	return Coordinate{X: c.X * other.X, Y: c.Y * other.Y}
}

// Div divides both components by n, truncating toward zero.
func (c Coordinate) Div(n int) (Coordinate, error) {
	if n == 0 {
		return Coordinate{}, ErrDivideByZero
	}
	return Coordinate{X: c.X / n, Y: c.Y / n}, nil
}

// Half is Div(2) as a plain pair.
func (c Coordinate) Half() (int, int) {
	return c.X / 2, c.Y / 2
}

// Tuple returns the components as a pair.
func (c Coordinate) Tuple() (int, int) {
	return c.X, c.Y
}

// Floats returns the components as float64.
func (c Coordinate) Floats() (float64, float64) {
	return float64(c.X), float64(c.Y)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Point is a continuous pixel-space position.
type Point struct {
	X, Y float64
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}
