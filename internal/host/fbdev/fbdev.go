// Package fbdev draws straight to a Linux framebuffer console and reads
// keyboards and mice through evdev. There is no window manager, so the
// "window" is the whole screen and never resizes.
package fbdev

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
	"github.com/rook-computer/pixelpad/internal/system"
)

const DefaultDevice = "/dev/fb0"

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type Host struct {
	Device string
	Logger logger

	queue *input.Queue

	mu        sync.Mutex
	presenter *render.FBPresenter
	console   system.Console
	cancel    context.CancelFunc
	closed    bool
}

func New(device string) *Host {
	if device == "" {
		device = DefaultDevice
	}
	return &Host{Device: device, queue: input.NewQueue(input.DefaultQueueSize)}
}

func (h *Host) Events() <-chan input.Event { return h.queue.Events() }

func (h *Host) Dropped() uint64 { return h.queue.Dropped() }

// Open takes over the console. The first tick sees a Resized event with the
// framebuffer's resolution, since the configured window size cannot apply.
func (h *Host) Open(ctx context.Context, cfg config.Config) (render.Presenter, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, host.ErrClosed
	}
	if h.presenter != nil {
		return nil, fmt.Errorf("framebuffer %s already open", h.Device)
	}

	p, err := render.OpenFBPresenter(h.Device)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", h.Device, err)
	}
	p.Logger = h.Logger
	h.presenter = p

	width, height := p.Size()
	if h.Logger != nil {
		h.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", width, height)
	}

	h.console = system.Console{Logger: h.Logger}
	h.console.Acquire()

	h.queue.Push(input.Resized{Width: width, Height: height})

	readCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	tr := newTranslator(width, height)
	err = system.ReadInputEvents(readCtx, h.Logger, func(ev system.InputEvent) {
		if out, ok := tr.translate(ev); ok {
			h.queue.Push(out)
		}
	})
	if err != nil {
		// Still usable as a display; the app just gets no input.
		if h.Logger != nil {
			h.Logger.Errorf("input", "evdev unavailable: %v", err)
		}
		if !errors.Is(err, system.ErrNoInputDevices) {
			cancel()
		}
	}
	return p, nil
}

func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if h.cancel != nil {
		h.cancel()
	}
	var err error
	if h.presenter != nil {
		h.console.Restore()
		err = h.presenter.Close()
	}
	h.queue.Close()
	return err
}
