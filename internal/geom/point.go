package geom

import (
	"fmt"
	"math"
)

// Point is an integer position on the logical canvas.
// Negative components are valid and describe off-canvas positions.
type Point struct {
	X int32
	Y int32
}

func Pt(x, y int32) Point { return Point{X: x, Y: y} }

// PtInts converts an int pair. Values outside the int32 range wrap.
func PtInts(x, y int) Point { return Point{X: int32(x), Y: int32(y)} }

// PtFloats floors both components, so sub-pixel precision is dropped.
func PtFloats(x, y float64) Point {
	return Point{X: int32(math.Floor(x)), Y: int32(math.Floor(y))}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Clamped returns the point as unsigned coordinates with negative
// components raised to 0.
func (p Point) Clamped() (uint32, uint32) {
	x, y := p.X, p.Y
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return uint32(x), uint32(y)
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
