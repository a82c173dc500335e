package screens

import (
	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Brush leaves a trail of pixels while the left button is held. Space
// clears it.
type Brush struct {
	Points []geom.Point
}

func (s *Brush) Draw(f *app.Frame) {
	g, in := f.Graphics(), f.Input()
	g.Clear(render.RGB(20, 20, 20))

	if in.MouseDown(input.MouseLeft) {
		if p, ok := in.MousePosition(); ok {
			s.Points = append(s.Points, p)
		}
	}
	if in.KeyDown(input.KeySpace) {
		s.Points = s.Points[:0]
	}

	for _, p := range s.Points {
		g.Pixel(p, render.Yellow)
	}
	g.Text(geom.Pt(10, 10), "Left Click to Draw | Space to Clear", render.White)
}
