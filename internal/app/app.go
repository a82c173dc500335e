package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/state"
)

// maxDt is the longest tick delta reported as-is. Longer gaps (window drags,
// debugger stops) are treated as a pause and reported as one frame interval.
const maxDt = 100 * time.Millisecond

// App is the frame scheduler. Each tick it folds host events into the input
// tracker, runs the screen and extensions against a fresh command buffer and
// hands the commands to the backend.
type App struct {
	Config config.Config
	Host   host.Host
	Screen Screen
	Store  *state.Store
	Logger Logger
	Clock  Clock

	extensions []Extension

	closeRequested atomic.Bool
	running        atomic.Bool
}

func New(cfg config.Config, h host.Host, screen Screen) *App {
	return &App{
		Config: cfg,
		Host:   h,
		Screen: screen,
		Store:  state.NewStore(),
		Logger: NoopLogger{},
		Clock:  systemClock{},
	}
}

// Use registers extensions. Hooks run in registration order.
func (app *App) Use(exts ...Extension) {
	app.extensions = append(app.extensions, exts...)
}

// Close asks the loop to stop after the current tick. Safe to call from any
// goroutine.
func (app *App) Close() {
	app.closeRequested.Store(true)
}

// loop holds the per-run state owned by the scheduler goroutine.
type loop struct {
	app     *App
	cfg     config.Config
	backend *render.Backend
	gfx     *render.Graphics
	tracker *input.Tracker
	events  <-chan input.Event

	interval  time.Duration
	lastStart time.Time
	ticks     uint64
	hostGone  bool
}

// Run opens the host and ticks until a close is requested, the host goes
// away or ctx is cancelled. The tick in progress always completes. Failing
// to open the host is the only fatal error once extensions are initialised.
func (app *App) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return errors.New("app already running")
	}
	defer app.running.Store(false)
	app.closeRequested.Store(false)

	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Clock == nil {
		app.Clock = systemClock{}
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Screen == nil {
		return errors.New("app has no screen")
	}
	if app.Host == nil {
		return errors.New("app has no host")
	}
	cfg := app.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	for i, ext := range app.extensions {
		if err := ext.Init(); err != nil {
			return fmt.Errorf("init extension %d (%T): %w", i, ext, err)
		}
	}

	presenter, err := app.Host.Open(ctx, cfg)
	if err != nil {
		app.Logger.Errorf("app", "open host: %v", err)
		return fmt.Errorf("open host: %w", err)
	}
	defer func() {
		if err := app.Host.Close(); err != nil {
			app.Logger.Errorf("app", "close host: %v", err)
		}
	}()

	backend := render.NewBackend(cfg.LogicalWidth, cfg.LogicalHeight, presenter)
	backend.Logger = app.Logger

	l := &loop{
		app:       app,
		cfg:       cfg,
		backend:   backend,
		gfx:       render.NewGraphics(cfg.LogicalWidth, cfg.LogicalHeight, cfg.WindowWidth, cfg.WindowHeight),
		tracker:   input.NewTracker(),
		events:    app.Host.Events(),
		interval:  cfg.FrameInterval(),
		lastStart: app.Clock.Now(),
	}

	app.Store.SetWindow(cfg.Title, cfg.LogicalWidth, cfg.LogicalHeight, cfg.WindowWidth, cfg.WindowHeight)
	app.Store.SetPhase(state.WindowCreated)
	app.Logger.Infof("app", "window %q created: logical %dx%d, window %dx%d, target %d fps",
		cfg.Title, cfg.LogicalWidth, cfg.LogicalHeight, cfg.WindowWidth, cfg.WindowHeight, cfg.TargetFPS)
	defer app.Store.SetPhase(state.Closed)

	for {
		start := app.Clock.Now()
		l.tick(start)

		if l.tracker.CloseRequested() || l.hostGone || app.closeRequested.Load() {
			app.Logger.Infof("app", "closing after %d ticks", l.ticks)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if cfg.Capped() {
			wait := start.Add(l.interval).Sub(app.Clock.Now())
			if wait > 0 {
				if err := app.Clock.Sleep(ctx, wait); err != nil {
					return err
				}
			}
		}
	}
}

func (l *loop) tick(start time.Time) {
	l.tracker.Step()
	l.drainEvents()

	dt := start.Sub(l.lastStart)
	l.lastStart = start
	if dt > maxDt {
		dt = l.interval
	}

	winW, winH := l.gfx.WindowSize()
	l.tracker.UpdateMouseMapping(l.cfg.LogicalWidth, l.cfg.LogicalHeight, winW, winH)

	l.ticks++
	l.gfx.BeginFrame()
	frame := &Frame{tick: l.ticks, elapsed: dt, gfx: l.gfx, input: l.tracker, app: l.app}
	for _, ext := range l.app.extensions {
		ext.PreDraw(frame)
	}
	l.app.Screen.Draw(frame)
	for _, ext := range l.app.extensions {
		ext.PostDraw(frame)
	}
	_ = l.backend.Render(l.gfx.Commands())
	l.tracker.EndStep()

	stats := state.Stats{
		Ticks:         l.ticks,
		LastDt:        dt,
		PresentErrors: l.backend.PresentErrors(),
	}
	if dc, ok := l.app.Host.(host.DropCounter); ok {
		stats.DroppedEvents = dc.Dropped()
	}
	l.app.Store.UpdateStats(stats)
}

// drainEvents folds every queued event into the tracker without blocking.
func (l *loop) drainEvents() {
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				l.hostGone = true
				l.events = nil
				return
			}
			l.tracker.Process(ev)
			if r, ok := ev.(input.Resized); ok {
				l.resize(r.Width, r.Height)
			}
		default:
			return
		}
	}
}

func (l *loop) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.gfx.SetWindowSize(width, height)
	_ = l.backend.ResizeWindow(width, height)
	l.app.Store.SetWindowSize(width, height)
}
