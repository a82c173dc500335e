package extensions

import (
	"fmt"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/render/font"
)

// FPSOverlay draws a smoothed frames-per-second counter in a corner of the
// canvas after the screen has drawn.
type FPSOverlay struct {
	app.NopExtension

	Pos        geom.Point
	Color      render.Color
	Background render.Color

	// Smoothing is the weight of the newest sample, in (0, 1].
	Smoothing float64

	fps float64
}

func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{
		Pos:        geom.Pt(4, 4),
		Color:      render.White,
		Background: render.Black,
		Smoothing:  0.1,
	}
}

func (o *FPSOverlay) FPS() float64 { return o.fps }

func (o *FPSOverlay) PostDraw(f *app.Frame) {
	if dt := f.Dt(); dt > 0 {
		sample := 1 / dt
		alpha := o.Smoothing
		if alpha <= 0 || alpha > 1 {
			alpha = 1
		}
		if o.fps == 0 {
			o.fps = sample
		} else {
			o.fps += alpha * (sample - o.fps)
		}
	}

	text := fmt.Sprintf("%3.0f FPS", o.fps)
	g := f.Graphics()
	w := int32(len(text) * font.Advance)
	g.Rect(o.Pos.Sub(geom.Pt(1, 1)), geom.Pt(w+2, font.Height+2), o.Background)
	g.Text(o.Pos, text, o.Color)
}
