// Package x11 runs the scheduler in a plain X11 window. Frames are uploaded
// through an xgraphics image that tracks the window size.
package x11

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

const windowEvents = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange |
	xproto.EventMaskStructureNotify

type Host struct {
	Logger logger

	queue *input.Queue

	mu     sync.Mutex
	xu     *xgbutil.XUtil
	win    *xwindow.Window
	width  int
	height int
	closed bool
	done   chan struct{}
}

func New() *Host {
	return &Host{queue: input.NewQueue(input.DefaultQueueSize)}
}

func (h *Host) Events() <-chan input.Event { return h.queue.Events() }

func (h *Host) Dropped() uint64 { return h.queue.Dropped() }

// Open connects to $DISPLAY, creates and maps the window and starts the X
// event loop. The window is destroyed by Close or when ctx is done.
func (h *Host) Open(ctx context.Context, cfg config.Config) (render.Presenter, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, host.ErrClosed
	}
	if h.xu != nil {
		return nil, fmt.Errorf("x11 window already open")
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	win, err := xwindow.Generate(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("generate window id: %w", err)
	}
	err = win.CreateChecked(xu.RootWin(), 0, 0, cfg.WindowWidth, cfg.WindowHeight,
		xproto.CwBackPixel|xproto.CwEventMask, 0x000000, windowEvents)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("create window: %w", err)
	}

	if err := icccm.WmNameSet(xu, win.Id, cfg.Title); err != nil {
		h.logError("set WM_NAME: %v", err)
	}
	if err := icccm.WmProtocolsSet(xu, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		h.logError("set WM_PROTOCOLS: %v", err)
	}
	if !cfg.Resizeable {
		hints := &icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			MinWidth:  uint(cfg.WindowWidth),
			MinHeight: uint(cfg.WindowHeight),
			MaxWidth:  uint(cfg.WindowWidth),
			MaxHeight: uint(cfg.WindowHeight),
		}
		if err := icccm.WmNormalHintsSet(xu, win.Id, hints); err != nil {
			h.logError("set WM_NORMAL_HINTS: %v", err)
		}
	}

	h.xu, h.win = xu, win
	h.width, h.height = cfg.WindowWidth, cfg.WindowHeight
	h.connect()
	win.Map()

	p, err := newPresenter(xu, win.Id, cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		win.Destroy()
		xu.Conn().Close()
		h.xu, h.win = nil, nil
		return nil, err
	}

	h.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		xevent.Main(xu)
	}(h.done)
	go func(done chan struct{}) {
		select {
		case <-ctx.Done():
			_ = h.Close()
		case <-done:
		}
	}(h.done)

	if h.Logger != nil {
		h.Logger.Infof("x11", "window %q mapped at %dx%d", cfg.Title, cfg.WindowWidth, cfg.WindowHeight)
	}
	return p, nil
}

// connect registers the window's event callbacks. They run on the xevent
// goroutine and only push into the queue.
func (h *Host) connect() {
	xu, wid := h.xu, h.win.Id

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		h.queue.Push(input.KeyEvent{Key: keyFromKeysym(keybind.KeysymGet(xu, ev.Detail, 0)), Down: true})
	}).Connect(xu, wid)
	xevent.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
		// Held keys repeat as release+press pairs; the press is a no-op on a
		// held key, so dropping the release keeps the key held.
		if isAutoRepeat(*ev.KeyReleaseEvent, xevent.Peek(xu)) {
			return
		}
		h.queue.Push(input.KeyEvent{Key: keyFromKeysym(keybind.KeysymGet(xu, ev.Detail, 0)), Down: false})
	}).Connect(xu, wid)
	xevent.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		h.queue.Push(input.MouseButtonEvent{Button: mouseFromButton(ev.Detail), Down: true})
	}).Connect(xu, wid)
	xevent.ButtonReleaseFun(func(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		h.queue.Push(input.MouseButtonEvent{Button: mouseFromButton(ev.Detail), Down: false})
	}).Connect(xu, wid)
	xevent.MotionNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		h.queue.Push(input.CursorMoved{X: float64(ev.EventX), Y: float64(ev.EventY)})
	}).Connect(xu, wid)
	xevent.EnterNotifyFun(func(xu *xgbutil.XUtil, ev xevent.EnterNotifyEvent) {
		h.queue.Push(input.CursorMoved{X: float64(ev.EventX), Y: float64(ev.EventY)})
	}).Connect(xu, wid)
	xevent.LeaveNotifyFun(func(xu *xgbutil.XUtil, ev xevent.LeaveNotifyEvent) {
		h.queue.Push(input.CursorLeft{})
	}).Connect(xu, wid)
	xevent.FocusInFun(func(xu *xgbutil.XUtil, ev xevent.FocusInEvent) {
		h.queue.Push(input.Focus{Focused: true})
	}).Connect(xu, wid)
	xevent.FocusOutFun(func(xu *xgbutil.XUtil, ev xevent.FocusOutEvent) {
		h.queue.Push(input.Focus{Focused: false})
	}).Connect(xu, wid)
	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		h.configured(int(ev.Width), int(ev.Height))
	}).Connect(xu, wid)
	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		if icccm.IsDeleteProtocol(xu, ev) {
			h.queue.Push(input.CloseRequested{})
		}
	}).Connect(xu, wid)
}

// configured turns ConfigureNotify into Resized. Moves also produce
// ConfigureNotify and are dropped here.
func (h *Host) configured(width, height int) {
	h.mu.Lock()
	changed := width != h.width || height != h.height
	h.width, h.height = width, height
	h.mu.Unlock()
	if changed {
		h.queue.Push(input.Resized{Width: width, Height: height})
	}
}

func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	xu, win, done := h.xu, h.win, h.done
	h.mu.Unlock()

	if xu != nil {
		xevent.Quit(xu)
		win.Destroy()
		xu.Conn().Close()
	}
	if done != nil {
		<-done
	}
	h.queue.Close()
	return nil
}

func (h *Host) logError(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Errorf("x11", format, args...)
	}
}

// presenter scales each logical frame to the window size and uploads it
// through an xgraphics image bound to the window.
type presenter struct {
	xu      *xgbutil.XUtil
	wid     xproto.Window
	ximg    *xgraphics.Image
	scratch *image.RGBA
}

func newPresenter(xu *xgbutil.XUtil, wid xproto.Window, width, height int) (*presenter, error) {
	p := &presenter{xu: xu, wid: wid}
	if err := p.Resize(width, height); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *presenter) Resize(width, height int) error {
	ximg := xgraphics.New(p.xu, image.Rect(0, 0, width, height))
	if err := ximg.XSurfaceSet(p.wid); err != nil {
		ximg.Destroy()
		return fmt.Errorf("bind surface %dx%d: %w", width, height, err)
	}
	if p.ximg != nil {
		p.ximg.Destroy()
	}
	p.ximg = ximg
	p.scratch = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (p *presenter) Present(frame *image.RGBA) error {
	if p.ximg == nil {
		return host.ErrClosed
	}
	render.ScaleNearest(p.scratch, frame)
	rowBytes := p.scratch.Rect.Dx() * 4
	for y := 0; y < p.scratch.Rect.Dy(); y++ {
		src := p.scratch.Pix[y*p.scratch.Stride : y*p.scratch.Stride+rowBytes]
		dst := p.ximg.Pix[y*p.ximg.Stride : y*p.ximg.Stride+rowBytes]
		bgraFromRGBA(dst, src)
	}
	p.ximg.XDraw()
	p.ximg.XPaint(p.wid)
	return nil
}
