package screens

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/input"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Sleep(ctx context.Context, d time.Duration) error {
	c.now = c.now.Add(d)
	return ctx.Err()
}

// tickLimit closes the app at the end of tick limit+1.
type tickLimit struct {
	app.NopExtension
	limit uint64
}

func (l *tickLimit) PostDraw(f *app.Frame) {
	if f.Tick() > l.limit {
		f.Close()
	}
}

// runScreen runs screen for frames+1 ticks on a window the same size as the
// canvas, so cursor positions map one to one.
func runScreen(t *testing.T, screen app.Screen, w, h int, frames uint64, script func(*headless.Host)) *image.RGBA {
	t.Helper()
	cfg, err := config.New(config.WithLogicalSize(w, h), config.WithWindowSize(w, h))
	if err != nil {
		t.Fatal(err)
	}
	host := headless.New()
	if script != nil {
		script(host)
	}
	a := app.New(cfg, host, screen)
	a.Clock = &stepClock{now: time.Unix(0, 0)}
	a.Use(&tickLimit{limit: frames})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frame, ok := host.Frame()
	if !ok {
		t.Fatal("no frame presented")
	}
	return frame
}

func TestRunScreenStopsAfterOneTick(t *testing.T) {
	var ticks uint64
	runScreen(t, app.DrawFunc(func(f *app.Frame) { ticks = f.Tick() }), 8, 8, 0, nil)
	if ticks != 1 {
		t.Fatalf("ran %d ticks, want 1", ticks)
	}
}

func rgb(img *image.RGBA, x, y int) color.RGBA {
	c := img.RGBAAt(x, y)
	c.A = 255
	return c
}

func TestByNameKnowsEveryScreen(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name)
		if err != nil || s == nil {
			t.Errorf("ByName(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := ByName("nope"); err == nil {
		t.Error("ByName(nope) succeeded")
	}
}

func TestByNameReturnsFreshInstances(t *testing.T) {
	a, _ := ByName("brush")
	b, _ := ByName("brush")
	if a == b {
		t.Fatal("ByName returned a shared instance")
	}
}

func TestShapesFillsCentroid(t *testing.T) {
	frame := runScreen(t, &Shapes{}, 640, 400, 0, nil)
	if got := rgb(frame, 300, 116); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("centroid = %v, want red", got)
	}
	if got := rgb(frame, 0, 399); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("background = %v, want white", got)
	}
}

func TestInputsMovesAndRecolors(t *testing.T) {
	s := NewInputs()
	frame := runScreen(t, s, 320, 240, 3, func(h *headless.Host) {
		h.At(0,
			input.KeyEvent{Key: input.KeyRight, Down: true},
			input.MouseButtonEvent{Button: input.MouseLeft, Down: true},
		)
	})
	if want := geom.Pt(48, 40); s.Pos != want {
		t.Fatalf("Pos = %v, want %v", s.Pos, want)
	}
	if got := rgb(frame, 50, 45); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("square = %v, want red", got)
	}
}

func TestBouncingRectMovesByDt(t *testing.T) {
	s := NewBouncingRect()
	// The first tick has dt 0; the next two are one 60 fps interval each.
	runScreen(t, s, 320, 240, 2, nil)
	if want := geom.Pt(54, 56); s.Pos != want {
		t.Fatalf("Pos = %v, want %v", s.Pos, want)
	}
}

func TestBouncingRectReflectsAtEdge(t *testing.T) {
	s := &BouncingRect{Pos: geom.Pt(300, 100), Vel: geom.Pt(2, 0), Size: geom.Pt(20, 20)}
	runScreen(t, s, 320, 240, 0, nil)
	if s.Vel.X != -2 {
		t.Fatalf("Vel.X = %d, want -2", s.Vel.X)
	}
}

func TestBrushPaintsAndClears(t *testing.T) {
	yellow := color.RGBA{255, 255, 0, 255}

	s := &Brush{}
	frame := runScreen(t, s, 320, 240, 2, func(h *headless.Host) {
		h.At(0,
			input.CursorMoved{X: 40, Y: 50},
			input.MouseButtonEvent{Button: input.MouseLeft, Down: true},
		)
		h.At(1, input.CursorMoved{X: 41, Y: 50})
	})
	for _, x := range []int{40, 41} {
		if got := rgb(frame, x, 50); got != yellow {
			t.Errorf("pixel (%d,50) = %v, want yellow", x, got)
		}
	}

	s = &Brush{}
	frame = runScreen(t, s, 320, 240, 2, func(h *headless.Host) {
		h.At(0,
			input.CursorMoved{X: 40, Y: 50},
			input.MouseButtonEvent{Button: input.MouseLeft, Down: true},
		)
		h.At(1,
			input.MouseButtonEvent{Button: input.MouseLeft, Down: false},
			input.KeyEvent{Key: input.KeySpace, Down: true},
		)
	})
	if got := rgb(frame, 40, 50); got == yellow {
		t.Error("trail survived Space")
	}
	if len(s.Points) != 0 {
		t.Errorf("Points = %v, want empty", s.Points)
	}
}

func TestHoverDragCentresBoxOnCursor(t *testing.T) {
	s := NewHoverDrag()
	runScreen(t, s, 320, 240, 1, func(h *headless.Host) {
		h.At(0,
			input.CursorMoved{X: 120, Y: 120},
			input.MouseButtonEvent{Button: input.MouseLeft, Down: true},
		)
	})
	if want := geom.Pt(95, 95); s.Pos != want {
		t.Fatalf("Pos = %v, want %v", s.Pos, want)
	}
}

func TestHoverDragIgnoresClickOutside(t *testing.T) {
	s := NewHoverDrag()
	runScreen(t, s, 320, 240, 1, func(h *headless.Host) {
		h.At(0,
			input.CursorMoved{X: 10, Y: 200},
			input.MouseButtonEvent{Button: input.MouseLeft, Down: true},
		)
	})
	if want := geom.Pt(100, 100); s.Pos != want {
		t.Fatalf("Pos = %v, want %v", s.Pos, want)
	}
}

func TestLightFollowsCursor(t *testing.T) {
	frame := runScreen(t, &Light{}, 320, 240, 0, func(h *headless.Host) {
		h.At(0, input.CursorMoved{X: 100, Y: 100})
	})
	if got := rgb(frame, 105, 100); got != (color.RGBA{0, 255, 255, 255}) {
		t.Fatalf("inner ring = %v, want cyan", got)
	}
}

func TestGalleryDrawsQRCell(t *testing.T) {
	frame := runScreen(t, &Gallery{QRPayload: "pixelpad"}, 320, 240, 0, nil)
	qrCell := image.Rect(160, 120, 320, 240)
	var black, white int
	for y := qrCell.Min.Y; y < qrCell.Max.Y; y++ {
		for x := qrCell.Min.X; x < qrCell.Max.X; x++ {
			switch rgb(frame, x, y) {
			case color.RGBA{0, 0, 0, 255}:
				black++
			case color.RGBA{255, 255, 255, 255}:
				white++
			}
		}
	}
	if black == 0 || white == 0 {
		t.Fatalf("qr cell black=%d white=%d, want both", black, white)
	}
}
