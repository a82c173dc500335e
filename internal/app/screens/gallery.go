package screens

import (
	"image"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/render/layout"
)

const galleryPadding = 8

// Gallery splits the canvas into a 2x2 grid showing one primitive family
// per cell: rects, lines and triangles, circles, and a QR code.
type Gallery struct {
	QRPayload string
}

func (s *Gallery) Draw(f *app.Frame) {
	g := f.Graphics()
	g.Clear(render.RGB(32, 32, 40))

	w, h := g.LogicalSize()
	cells := layout.Cells(image.Rect(0, 0, w, h), 2, 2)
	if len(cells) != 4 {
		return
	}
	for i, cell := range cells {
		inner := layout.Inset(cell, galleryPadding)
		switch i {
		case 0:
			drawRects(g, inner)
		case 1:
			drawLines(g, inner, f.Tick())
		case 2:
			drawCircles(g, inner)
		case 3:
			s.drawQR(g, inner)
		}
	}
}

func topLeft(r image.Rectangle) geom.Point { return geom.PtInts(r.Min.X, r.Min.Y) }
func extent(r image.Rectangle) geom.Point  { return geom.PtInts(r.Dx(), r.Dy()) }

func drawRects(g *render.Graphics, r image.Rectangle) {
	colors := []render.Color{render.Red, render.Green, render.Blue, render.Yellow}
	for i, cell := range layout.Cells(r, 2, 2) {
		inner := layout.Inset(cell, 2)
		g.Rect(topLeft(inner), extent(inner), colors[i%len(colors)])
	}
}

func drawLines(g *render.Graphics, r image.Rectangle, tick uint64) {
	origin := topLeft(r)
	size := extent(r)
	// A fan of lines sweeping across the cell.
	const spokes = 12
	for i := int32(0); i <= spokes; i++ {
		end := origin.Add(geom.Pt(size.X*i/spokes, size.Y))
		g.Line(origin, end, render.Cyan)
	}
	phase := int32(tick % 60)
	apex := origin.Add(geom.Pt(size.X*phase/60, 0))
	g.Triangle(apex, origin.Add(geom.Pt(size.X-1, size.Y/2)), origin.Add(geom.Pt(size.X/2, size.Y-1)), render.Magenta)
}

func drawCircles(g *render.Graphics, r image.Rectangle) {
	sq := layout.FitSquare(r)
	center := geom.PtInts(sq.Min.X+sq.Dx()/2, sq.Min.Y+sq.Dy()/2)
	for radius := int32(sq.Dx() / 2); radius > 0; radius -= 6 {
		g.Circle(center, radius, render.Green)
	}
	g.Text(topLeft(r), "circles", render.White)
}

func (s *Gallery) drawQR(g *render.Graphics, r image.Rectangle) {
	sq := layout.FitSquare(r)
	side := render.QRCodeSide(s.QRPayload, 1)
	if side <= 0 {
		g.Text(topLeft(r), "no qr", render.White)
		return
	}
	scale := max(int32(sq.Dx())/side, 1)
	_ = g.QRCode(topLeft(sq), s.QRPayload, scale, render.Black, render.White)
}
