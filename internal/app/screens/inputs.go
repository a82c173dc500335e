package screens

import (
	"fmt"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Inputs moves a square with the arrow keys, turns it red while the left
// button goes down and shows the window size on the tick of a resize.
type Inputs struct {
	Pos   geom.Point
	Speed int32
	color render.Color
}

func NewInputs() *Inputs {
	return &Inputs{Pos: geom.Pt(40, 40), Speed: 2, color: render.Black}
}

func (s *Inputs) Draw(f *app.Frame) {
	g, in := f.Graphics(), f.Input()
	g.Clear(render.White)

	if in.KeyDown(input.KeyLeft) {
		s.Pos.X -= s.Speed
	}
	if in.KeyDown(input.KeyRight) {
		s.Pos.X += s.Speed
	}
	if in.KeyDown(input.KeyUp) {
		s.Pos.Y -= s.Speed
	}
	if in.KeyDown(input.KeyDown) {
		s.Pos.Y += s.Speed
	}

	if in.MousePressed(input.MouseLeft) {
		s.color = render.RGB(255, 0, 0)
	}
	if in.MouseReleased(input.MouseLeft) {
		s.color = render.Black
	}

	if w, h, ok := in.WindowResized(); ok {
		g.Text(geom.Pt(5, 5), fmt.Sprintf("Window: %dx%d", w, h), render.Blue)
	}

	g.Rect(s.Pos, geom.Pt(20, 20), s.color)
}
