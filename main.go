package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/app/screens"
	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/extensions"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/host/fbdev"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/host/x11"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/system"
	"github.com/rook-computer/pixelpad/internal/web"
)

func main() {
	// Flags
	configPath := flag.String("config", "", "YAML window config; missing keys keep their defaults")
	hostName := flag.String("host", "x11", "display host: x11 | fbdev | headless")
	fbDevice := flag.String("fb-device", fbdev.DefaultDevice, "framebuffer device for -host fbdev")
	screenName := flag.String("screen", "bouncing", "demo screen: "+strings.Join(screens.Names(), " | "))
	frames := flag.Uint64("frames", 0, "stop after presenting this many frames (0 runs until closed)")
	debug := flag.Bool("debug", false, "enable debug logging to ./pixelpad-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+system.EnvStdIOLog)
	preview := flag.Bool("preview", false, "serve the presented frames over HTTP; address via "+web.EnvListenAddr)
	fpsOverlay := flag.Bool("fps-overlay", false, "draw the measured frame rate in the top right corner")
	label := flag.String("label", "", "draw this text with the TrueType label extension")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if logPath := system.StdIOLogPath(*stdioLog, nil); logPath != "" {
		if err := system.RedirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./pixelpad-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	screen, err := screens.ByName(*screenName)
	if err != nil {
		fmt.Println("screen error:", err)
		os.Exit(2)
	}

	h, err := newHost(*hostName, *fbDevice, logger)
	if err != nil {
		fmt.Println("host error:", err)
		os.Exit(2)
	}

	// Context for lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, h, screen)
	a.Logger = logger

	var server web.Server = &web.NoopServer{}
	if *preview {
		serverCfg, err := web.DefaultServerConfigFromEnv("127.0.0.1:8080")
		if err != nil {
			fmt.Println("server config error:", err)
			os.Exit(2)
		}
		snapshot := render.NewSnapshotPresenter(cfg.WindowWidth, cfg.WindowHeight)
		a.Host = host.Tap(h, snapshot)
		server = web.NewHTTPServer(serverCfg, web.APIV1Deps{Status: a.Store, Frames: snapshot, Logger: logger})
	}
	if err := server.Start(ctx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer server.Stop()

	if *fpsOverlay {
		overlay := extensions.NewFPSOverlay()
		overlay.Pos = geom.PtInts(cfg.LogicalWidth-72, 2)
		a.Use(overlay)
	}
	if *frames > 0 {
		a.Use(&frameLimit{limit: *frames})
	}
	if *label != "" {
		l := extensions.NewLabel(*label, geom.Pt(8, 24), 18, render.White)
		l.Logger = logger
		a.Use(l)
	}

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the optional YAML file and PIXELPAD_* env.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadFromPath(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return config.FromEnv(cfg)
}

func newHost(name, fbDevice string, logger app.Logger) (host.Host, error) {
	switch name {
	case "x11":
		h := x11.New()
		h.Logger = logger
		return h, nil
	case "fbdev":
		h := fbdev.New(fbDevice)
		h.Logger = logger
		return h, nil
	case "headless":
		return headless.New(), nil
	default:
		return nil, fmt.Errorf("unknown host %q (want x11, fbdev or headless)", name)
	}
}

// frameLimit stops the app once limit frames have been presented.
type frameLimit struct {
	app.NopExtension
	limit uint64
}

func (l *frameLimit) PostDraw(f *app.Frame) {
	if f.Tick() >= l.limit {
		f.Close()
	}
}
