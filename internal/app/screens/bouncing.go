package screens

import (
	"fmt"
	"math"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
)

// BouncingRect moves a rectangle by dt and reflects it off the canvas
// edges. Velocity is in pixels per 1/60 s.
type BouncingRect struct {
	Pos  geom.Point
	Vel  geom.Point
	Size geom.Point
}

func NewBouncingRect() *BouncingRect {
	return &BouncingRect{Pos: geom.Pt(50, 50), Vel: geom.Pt(2, 3), Size: geom.Pt(20, 20)}
}

func (s *BouncingRect) Draw(f *app.Frame) {
	dt := f.Dt()
	g := f.Graphics()

	s.Pos.X += int32(math.Round(float64(s.Vel.X) * dt * 60))
	s.Pos.Y += int32(math.Round(float64(s.Vel.Y) * dt * 60))

	w, h := g.LogicalSize()
	if s.Pos.X <= 0 || s.Pos.X+s.Size.X >= int32(w) {
		s.Vel.X = -s.Vel.X
	}
	if s.Pos.Y <= 0 || s.Pos.Y+s.Size.Y >= int32(h) {
		s.Vel.Y = -s.Vel.Y
	}

	g.Clear(render.White)
	g.Rect(s.Pos, s.Size, render.RGB(128, 23, 255))
	g.Text(geom.Pt(10, 10), "pixelpad", render.Cyan)
	g.Text(geom.Pt(10, int32(h)-20), fmt.Sprintf("Pos: %d, %d", s.Pos.X, s.Pos.Y), render.Black)
}
