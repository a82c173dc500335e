package screens

import (
	"fmt"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Light draws nested circles around the cursor with its coordinates.
type Light struct{}

func (*Light) Draw(f *app.Frame) {
	g, in := f.Graphics(), f.Input()
	g.Clear(render.Black)

	if m, ok := in.MousePosition(); ok {
		g.Circle(m, 40, render.RGBA(0, 255, 255, 0.3))
		g.Circle(m, 20, render.RGBA(0, 255, 255, 0.6))
		g.Circle(m, 5, render.Cyan)
		g.Text(m.Add(geom.Pt(10, 10)), fmt.Sprintf("X: %d Y: %d", m.X, m.Y), render.White)
	}

	g.Text(geom.Pt(10, 10), "Move mouse to shine the light", render.White)
}
