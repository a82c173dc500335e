package render

import (
	"image"
	"sync/atomic"
)

// Presenter is the presentation surface a host provides. It receives the
// logical frame once per tick and scales it onto the physical display.
type Presenter interface {
	// Resize tells the surface the window now has the given physical size.
	// The logical frame passed to Present keeps its size.
	Resize(width, height int) error
	// Present copies frame to the display. frame is only valid during the
	// call.
	Present(frame *image.RGBA) error
}

// NoopPresenter discards every frame.
type NoopPresenter struct{}

func (NoopPresenter) Resize(width, height int) error  { return nil }
func (NoopPresenter) Present(frame *image.RGBA) error { return nil }

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Backend combines the rasterizer with a presenter. Presentation errors are
// logged and counted; they never abort a tick.
type Backend struct {
	raster    *Rasterizer
	presenter Presenter
	Logger    logger

	presentErrors atomic.Uint64
}

func NewBackend(logicalWidth, logicalHeight int, presenter Presenter) *Backend {
	if presenter == nil {
		presenter = NoopPresenter{}
	}
	return &Backend{raster: NewRasterizer(logicalWidth, logicalHeight), presenter: presenter}
}

func (b *Backend) Rasterizer() *Rasterizer { return b.raster }

// PresentErrors is the number of failed Present and Resize calls so far.
func (b *Backend) PresentErrors() uint64 { return b.presentErrors.Load() }

// Render rasterizes the whole command list and then presents the frame. The
// returned error is the presenter's; it has already been logged.
func (b *Backend) Render(cmds []Command) error {
	b.raster.Rasterize(cmds)
	if err := b.presenter.Present(b.raster.Frame()); err != nil {
		b.presentErrors.Add(1)
		if b.Logger != nil {
			b.Logger.Errorf("render", "present failed: %v", err)
		}
		return err
	}
	return nil
}

// ResizeWindow forwards a physical resize to the presenter. Zero-area sizes
// (minimised windows) are ignored.
func (b *Backend) ResizeWindow(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if err := b.presenter.Resize(width, height); err != nil {
		b.presentErrors.Add(1)
		if b.Logger != nil {
			b.Logger.Errorf("render", "resize surface to %dx%d failed: %v", width, height, err)
		}
		return err
	}
	if b.Logger != nil {
		b.Logger.Infof("render", "surface resized to %dx%d", width, height)
	}
	return nil
}
