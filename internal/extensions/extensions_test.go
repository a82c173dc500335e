package extensions

import (
	"context"
	"image"
	"math"
	"testing"
	"time"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/render"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Sleep(ctx context.Context, d time.Duration) error {
	c.now = c.now.Add(d)
	return ctx.Err()
}

func runFrames(t *testing.T, frames uint64, exts ...app.Extension) *image.RGBA {
	t.Helper()
	cfg, err := config.New(config.WithLogicalSize(160, 100), config.WithWindowSize(160, 100))
	if err != nil {
		t.Fatal(err)
	}
	h := headless.New(headless.CloseAfter(frames))
	a := app.New(cfg, h, app.DrawFunc(func(f *app.Frame) {
		f.Graphics().Clear(render.Black)
	}))
	a.Clock = &stepClock{now: time.Unix(0, 0)}
	a.Use(exts...)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frame, ok := h.Frame()
	if !ok {
		t.Fatal("no frame")
	}
	return frame
}

func countLit(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.R == 255 && c.G == 255 && c.B == 255 {
				n++
			}
		}
	}
	return n
}

func TestFPSOverlayConvergesOnTargetRate(t *testing.T) {
	overlay := NewFPSOverlay()
	frame := runFrames(t, 20, overlay)
	if got := overlay.FPS(); math.Abs(got-60) > 0.5 {
		t.Fatalf("FPS() = %.2f, want about 60", got)
	}
	if countLit(frame, image.Rect(0, 0, 80, 16)) == 0 {
		t.Fatal("counter text not drawn")
	}
}

func TestLabelDrawsInk(t *testing.T) {
	label := NewLabel("Hello", geom.Pt(10, 40), 20, render.White)
	frame := runFrames(t, 1, label)

	w := label.Width()
	if w <= 0 {
		t.Fatalf("Width() = %d", w)
	}
	inside := countLit(frame, image.Rect(10, 40, 10+w, 70))
	if inside == 0 {
		t.Fatal("no ink inside the label box")
	}
	if total := countLit(frame, frame.Bounds()); total != inside {
		t.Fatalf("%d lit pixels outside the label box", total-inside)
	}
}

func TestLabelRerendersOnTextChange(t *testing.T) {
	label := NewLabel("i", geom.Pt(0, 0), 16, render.White)
	if err := label.Init(); err != nil {
		t.Fatal(err)
	}
	narrow := label.Width()
	label.Text = "WWWW"
	if wide := label.Width(); wide <= narrow {
		t.Fatalf("width did not grow: %d -> %d", narrow, wide)
	}
	label.Text = ""
	if label.Width() != 0 {
		t.Fatal("empty label has width")
	}
}

func TestLabelFallsBackToBasicFont(t *testing.T) {
	label := NewLabel("abc", geom.Pt(0, 0), 16, render.White)
	label.FontData = []byte("not a font")
	if err := label.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := label.Width(); got != 21 {
		t.Fatalf("Width() = %d, want 21 (3 x 7px basic font)", got)
	}
}
