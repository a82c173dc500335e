package app

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/state"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type tickRecord struct {
	start time.Time
	dt    time.Duration
}

// recorder notes each tick's start in PreDraw and simulates work in Draw.
type recorder struct {
	NopExtension
	clock *fakeClock
	ticks []tickRecord
	work  func(tick uint64) time.Duration
}

func (r *recorder) PreDraw(f *Frame) {
	r.ticks = append(r.ticks, tickRecord{start: r.clock.Now(), dt: f.Elapsed()})
}

func (r *recorder) Draw(f *Frame) {
	f.Graphics().Clear(render.Black)
	if r.work != nil {
		r.clock.Advance(r.work(f.Tick()))
	}
}

func newTestApp(t *testing.T, cfg config.Config, h *headless.Host, work func(uint64) time.Duration) (*App, *recorder, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	rec := &recorder{clock: clock, work: work}
	a := New(cfg, h, rec)
	a.Clock = clock
	a.Use(rec)
	return a, rec, clock
}

func TestPacingHoldsTargetRate(t *testing.T) {
	cfg := config.Default()
	h := headless.New(headless.CloseAfter(10))
	a, rec, _ := newTestApp(t, cfg, h, func(uint64) time.Duration { return 5 * time.Millisecond })

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.ticks) != 11 {
		t.Fatalf("ran %d ticks, want 11", len(rec.ticks))
	}
	interval := cfg.FrameInterval()
	for i := 1; i < len(rec.ticks); i++ {
		gap := rec.ticks[i].start.Sub(rec.ticks[i-1].start)
		if gap < interval {
			t.Fatalf("tick %d started %v after the previous one, want >= %v", i+1, gap, interval)
		}
		if rec.ticks[i].dt != gap {
			t.Fatalf("tick %d dt = %v, want %v", i+1, rec.ticks[i].dt, gap)
		}
	}
}

func TestLongStallIsClampedToFrameInterval(t *testing.T) {
	cfg := config.Default()
	h := headless.New(headless.CloseAfter(5))
	a, rec, _ := newTestApp(t, cfg, h, func(tick uint64) time.Duration {
		switch tick {
		case 2:
			return 50 * time.Millisecond
		case 3:
			return 2 * time.Second
		}
		return time.Millisecond
	})

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rec.ticks[2].dt; got != 50*time.Millisecond {
		t.Fatalf("dt after a 50ms frame = %v, want it unclamped", got)
	}
	if got := rec.ticks[3].dt; got != cfg.FrameInterval() {
		t.Fatalf("dt after a 2s stall = %v, want %v", got, cfg.FrameInterval())
	}
	if got := rec.ticks[3].start.Sub(rec.ticks[2].start); got < 2*time.Second {
		t.Fatalf("stalled tick gap = %v", got)
	}
}

func TestUncappedNeverSleeps(t *testing.T) {
	cfg := config.Default()
	cfg.TargetFPS = 0
	h := headless.New(headless.CloseAfter(4))
	a, rec, clock := newTestApp(t, cfg, h, func(uint64) time.Duration { return 3 * time.Millisecond })

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Fatalf("slept %v while uncapped", clock.sleeps)
	}
	for i := 1; i < len(rec.ticks); i++ {
		if rec.ticks[i].dt != 3*time.Millisecond {
			t.Fatalf("tick %d dt = %v, want 3ms", i+1, rec.ticks[i].dt)
		}
	}
}

func TestCloseEventFinishesTickThenStops(t *testing.T) {
	h := headless.New()
	h.At(2, input.CloseRequested{})
	a, rec, _ := newTestApp(t, config.Default(), h, nil)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.ticks) != 3 {
		t.Fatalf("ran %d ticks, want 3", len(rec.ticks))
	}
	if got := h.Snapshot().Presents(); got != 3 {
		t.Fatalf("presented %d frames, want 3", got)
	}
	if got := a.Store.Phase(); got != state.Closed {
		t.Fatalf("phase = %v, want closed", got)
	}
	if got := a.Store.Snapshot().Stats.Ticks; got != 3 {
		t.Fatalf("Stats.Ticks = %d, want 3", got)
	}
}

func TestFrameCloseStopsLoop(t *testing.T) {
	h := headless.New()
	draws := 0
	a := New(config.Default(), h, DrawFunc(func(f *Frame) {
		draws++
		if f.Tick() == 2 {
			f.Close()
		}
	}))
	a.Clock = newFakeClock()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if draws != 2 {
		t.Fatalf("drew %d ticks, want 2", draws)
	}
}

func TestContextCancelFinishesTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := headless.New()
	a := New(config.Default(), h, DrawFunc(func(f *Frame) {
		if f.Tick() == 2 {
			cancel()
		}
		f.Graphics().Clear(render.Green)
	}))
	a.Clock = newFakeClock()

	err := a.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if got := h.Snapshot().Presents(); got != 2 {
		t.Fatalf("presented %d frames, want 2", got)
	}
}

type failingHost struct {
	*headless.Host
}

func (failingHost) Open(context.Context, config.Config) (render.Presenter, error) {
	return nil, errors.New("no display")
}

func TestHostOpenFailureIsFatal(t *testing.T) {
	drew := false
	a := New(config.Default(), failingHost{headless.New()}, DrawFunc(func(*Frame) { drew = true }))
	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("Run succeeded without a window")
	}
	if drew {
		t.Fatal("draw ran without a window")
	}
	if got := a.Store.Phase(); got != state.Idle {
		t.Fatalf("phase = %v, want idle", got)
	}
}

type brokenPresenter struct{}

func (brokenPresenter) Resize(int, int) error     { return errors.New("lost surface") }
func (brokenPresenter) Present(*image.RGBA) error { return errors.New("lost surface") }

type brokenHost struct {
	*headless.Host
}

func (brokenHost) Open(context.Context, config.Config) (render.Presenter, error) {
	return brokenPresenter{}, nil
}

func TestPresentFailuresAreNotFatal(t *testing.T) {
	h := headless.New()
	draws := 0
	a := New(config.Default(), brokenHost{h}, DrawFunc(func(f *Frame) {
		draws++
		if f.Tick() == 4 {
			f.Close()
		}
	}))
	a.Clock = newFakeClock()
	h.Push(input.Resized{Width: 300, Height: 200})

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if draws != 4 {
		t.Fatalf("drew %d ticks, want 4", draws)
	}
	if got := a.Store.Snapshot().Stats.PresentErrors; got != 5 {
		t.Fatalf("PresentErrors = %d, want 5 (1 resize + 4 presents)", got)
	}
}

func TestResizeUpdatesWindowSize(t *testing.T) {
	cfg := config.Default()
	h := headless.New(headless.CloseAfter(3))
	h.At(1, input.Resized{Width: 800, Height: 600})
	h.At(2, input.Resized{Width: 0, Height: 0})

	type obs struct {
		w, h    int
		resized bool
	}
	var seen []obs
	a := New(cfg, h, DrawFunc(func(f *Frame) {
		w, hh := f.Graphics().WindowSize()
		_, _, ok := f.Input().WindowResized()
		seen = append(seen, obs{w, hh, ok})
	}))
	a.Clock = newFakeClock()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []obs{
		{cfg.WindowWidth, cfg.WindowHeight, false},
		{800, 600, true},
		{800, 600, false},
		{800, 600, false},
	}
	if len(seen) != len(want) {
		t.Fatalf("saw %d ticks, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("tick %d: %+v, want %+v", i+1, seen[i], want[i])
		}
	}
	scaled, ok := h.Snapshot().Scaled()
	if !ok || scaled.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Fatalf("presenter not resized: %v", scaled.Bounds())
	}
	if lw, lh := storedLogicalSize(a); lw != cfg.LogicalWidth || lh != cfg.LogicalHeight {
		t.Fatalf("logical size changed to %dx%d", lw, lh)
	}
}

func storedLogicalSize(a *App) (int, int) {
	s := a.Store.Snapshot()
	return s.LogicalWidth, s.LogicalHeight
}

func TestInputEdgesThroughScheduler(t *testing.T) {
	cfg := config.Default()
	h := headless.New(headless.CloseAfter(3))
	h.At(0,
		input.KeyEvent{Key: input.KeyRight, Down: true},
		input.CursorMoved{X: float64(cfg.WindowWidth), Y: float64(cfg.WindowHeight)},
	)
	h.At(1, input.KeyEvent{Key: input.KeyRight, Down: false})

	type obs struct {
		down, pressed, released bool
	}
	var seen []obs
	var mouse []geom.Point
	a := New(cfg, h, DrawFunc(func(f *Frame) {
		in := f.Input()
		seen = append(seen, obs{in.KeyDown(input.KeyRight), in.KeyPressed(input.KeyRight), in.KeyReleased(input.KeyRight)})
		if p, ok := in.MousePosition(); ok {
			mouse = append(mouse, p)
		}
	}))
	a.Clock = newFakeClock()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []obs{{true, true, false}, {true, false, true}, {}, {}}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("tick %d: %+v, want %+v", i+1, seen[i], want[i])
		}
	}
	if len(mouse) == 0 || mouse[0] != geom.PtInts(cfg.LogicalWidth, cfg.LogicalHeight) {
		t.Fatalf("mouse = %v, want bottom-right corner in logical space", mouse)
	}
}

func TestCommandsReachThePresenter(t *testing.T) {
	cfg, _ := config.New(config.WithLogicalSize(16, 16), config.WithWindowSize(32, 32))
	h := headless.New(headless.CloseAfter(1))
	a := New(cfg, h, DrawFunc(func(f *Frame) {
		g := f.Graphics()
		g.Clear(render.Blue)
		g.Pixel(geom.Pt(3, 4), render.White)
	}))
	a.Clock = newFakeClock()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frame, ok := h.Frame()
	if !ok {
		t.Fatal("no frame presented")
	}
	if c := frame.RGBAAt(3, 4); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("pixel (3,4) = %+v, want white", c)
	}
	if c := frame.RGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Fatalf("pixel (0,0) = %+v, want blue", c)
	}
}

type orderExt struct {
	name  string
	calls *[]string
	err   error
}

func (e orderExt) Init() error {
	*e.calls = append(*e.calls, e.name+".init")
	return e.err
}
func (e orderExt) PreDraw(*Frame)  { *e.calls = append(*e.calls, e.name+".pre") }
func (e orderExt) PostDraw(*Frame) { *e.calls = append(*e.calls, e.name+".post") }

func TestExtensionOrder(t *testing.T) {
	var calls []string
	h := headless.New()
	a := New(config.Default(), h, DrawFunc(func(f *Frame) {
		calls = append(calls, "draw")
		f.Close()
	}))
	a.Clock = newFakeClock()
	a.Use(orderExt{name: "a", calls: &calls}, orderExt{name: "b", calls: &calls})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"a.init", "b.init", "a.pre", "b.pre", "draw", "a.post", "b.post"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestExtensionInitFailureAbortsBeforeOpen(t *testing.T) {
	var calls []string
	h := headless.New()
	a := New(config.Default(), h, DrawFunc(func(*Frame) { calls = append(calls, "draw") }))
	a.Use(orderExt{name: "bad", calls: &calls, err: errors.New("font missing")})
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("Run succeeded with a failing extension")
	}
	if h.Snapshot() != nil {
		t.Fatal("host opened despite init failure")
	}
	if len(calls) != 1 {
		t.Fatalf("calls = %v", calls)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := config.Default()
	cfg.LogicalWidth = 0
	a := New(cfg, headless.New(), DrawFunc(func(*Frame) {}))
	if err := a.Run(context.Background()); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("Run = %v, want ErrInvalid", err)
	}
}
