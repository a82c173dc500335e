// Package host defines the windowing collaborator the scheduler runs on.
// Implementations live in the subpackages: headless for tests and
// previews, x11 for desktop windows and fbdev for the Linux console.
package host

import (
	"context"
	"errors"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

// ErrClosed is returned by Open after Close.
var ErrClosed = errors.New("host closed")

// Host owns the window (or screen) and its event stream.
//
// Open creates the window described by cfg and returns the surface frames
// are presented to. Events delivers raw input until Close; the channel is
// closed when the host goes away.
type Host interface {
	Open(ctx context.Context, cfg config.Config) (render.Presenter, error)
	Events() <-chan input.Event
	Close() error
}

// DropCounter is implemented by hosts that can lose events under load.
type DropCounter interface {
	Dropped() uint64
}
