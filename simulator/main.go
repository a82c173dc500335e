package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/app/screens"
	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/extensions"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/web"
)

// The simulator runs a demo screen without a display and serves what it
// draws over HTTP. Cursor input is faked with a slow sweep so the
// mouse-driven screens have something to react to.
func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode (permissive CORS); also configurable via "+web.EnvDevMode)
	screenName := flag.String("screen", "gallery", "demo screen: "+strings.Join(screens.Names(), " | "))
	fps := flag.Int("fps", config.DefaultTargetFPS, "target frame rate (0 = uncapped)")
	sweep := flag.Bool("sweep", true, "move a fake cursor across the canvas")
	flag.Parse()

	cfg, err := config.FromEnv(config.Default())
	if err == nil {
		cfg.TargetFPS = *fps
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	screen, err := screens.ByName(*screenName)
	if err != nil {
		fmt.Println("screen error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := headless.New()
	a := app.New(cfg, h, screen)
	a.Use(extensions.NewFPSOverlay())
	if *sweep {
		a.Use(&cursorSweep{host: h, width: cfg.WindowWidth, height: cfg.WindowHeight})
	}

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode}, web.APIV1Deps{
		Status: a.Store,
		Frames: previewFrames{h},
	})
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer server.Stop()

	fmt.Println("pixelpad simulator listening on", server.ListenAddr())
	fmt.Println("Screen:", *screenName)
	fmt.Println("Preview: http://" + displayAddr(server.ListenAddr()) + "/")

	if err := a.Run(processCtx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if strings.HasPrefix(addr, "[::]:") {
		return "127.0.0.1" + strings.TrimPrefix(addr, "[::]")
	}
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	return addr
}

// previewFrames reads the headless snapshot, which only exists once the
// host is open.
type previewFrames struct{ host *headless.Host }

func (p previewFrames) source() web.FrameSource {
	if snap := p.host.Snapshot(); snap != nil {
		return snap
	}
	return web.NoFrames{}
}

func (p previewFrames) Logical() (*image.RGBA, bool) { return p.source().Logical() }
func (p previewFrames) Scaled() (*image.RGBA, bool)  { return p.source().Scaled() }

// cursorSweep pushes a cursor position each tick, tracing a slow diagonal
// bounce over the window, and holds the left button on alternate passes.
type cursorSweep struct {
	app.NopExtension
	host          *headless.Host
	width, height int
	pos, vel      geom.Point
	pressed       bool
}

func (s *cursorSweep) PostDraw(f *app.Frame) {
	if s.vel == (geom.Point{}) {
		s.vel = geom.Pt(3, 2)
	}
	s.pos = s.pos.Add(s.vel)
	if s.pos.X < 0 || s.pos.X >= int32(s.width) {
		s.vel.X = -s.vel.X
		s.pos.X += 2 * s.vel.X
		s.pressed = !s.pressed
		s.host.Push(input.MouseButtonEvent{Button: input.MouseLeft, Down: s.pressed})
	}
	if s.pos.Y < 0 || s.pos.Y >= int32(s.height) {
		s.vel.Y = -s.vel.Y
		s.pos.Y += 2 * s.vel.Y
	}
	s.host.Push(input.CursorMoved{X: float64(s.pos.X), Y: float64(s.pos.Y)})
}
