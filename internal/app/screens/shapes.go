package screens

import (
	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Shapes draws a static triangle with a square at its centroid.
type Shapes struct{}

func (*Shapes) Draw(f *app.Frame) {
	g := f.Graphics()
	g.Clear(render.White)

	p1, p2, p3 := geom.Pt(100, 50), geom.Pt(500, 50), geom.Pt(300, 250)
	g.Triangle(p1, p2, p3, render.Red)

	centroid := geom.Pt((p1.X+p2.X+p3.X)/3, (p1.Y+p2.Y+p3.Y)/3)
	g.Rect(centroid.Sub(geom.Pt(25, 25)), geom.Pt(50, 50), render.Red)

	g.Line(geom.Pt(20, 300), geom.Pt(620, 380), render.Blue)
	g.Circle(geom.Pt(560, 300), 40, render.Green)
	g.Text(geom.Pt(10, 10), "shapes", render.Black)
}
