package screens

import (
	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

// HoverDrag highlights a box under the cursor and centres it on the cursor
// while the left button is held over it.
type HoverDrag struct {
	Pos  geom.Point
	Size geom.Point
}

func NewHoverDrag() *HoverDrag {
	return &HoverDrag{Pos: geom.Pt(100, 100), Size: geom.Pt(50, 50)}
}

func (s *HoverDrag) contains(p geom.Point) bool {
	return p.X >= s.Pos.X && p.X <= s.Pos.X+s.Size.X &&
		p.Y >= s.Pos.Y && p.Y <= s.Pos.Y+s.Size.Y
}

func (s *HoverDrag) Draw(f *app.Frame) {
	g, in := f.Graphics(), f.Input()
	g.Clear(render.Black)

	color := render.Blue
	if m, ok := in.MousePosition(); ok && s.contains(m) {
		color = render.Red
		if in.MouseDown(input.MouseLeft) {
			s.Pos = m.Sub(geom.Pt(s.Size.X/2, s.Size.Y/2))
		}
	}

	g.Rect(s.Pos, s.Size, color)
	g.Text(geom.Pt(10, 10), "Hover to highlight, Click to drag", render.White)
}
