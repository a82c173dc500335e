package web

import (
	"image"

	"github.com/rook-computer/pixelpad/internal/state"
)

// StatusSource abstracts the scheduler state used by the API.
//
// The concrete implementation is the app's *state.Store.
type StatusSource interface {
	Snapshot() state.State
}

// FrameSource abstracts access to the last presented frame.
//
// render.SnapshotPresenter satisfies it; Scaled is the frame as the window
// shows it.
type FrameSource interface {
	Logical() (*image.RGBA, bool)
	Scaled() (*image.RGBA, bool)
}

// sysLogger matches the logging shape used across the repo.
type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type APIV1Deps struct {
	Status StatusSource
	Frames FrameSource
	Logger sysLogger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Status == nil {
		out.Status = state.NewStore()
	}
	if out.Frames == nil {
		out.Frames = NoFrames{}
	}
	if out.Logger == nil {
		out.Logger = noopLogger{}
	}
	return out
}

// NoFrames reports that nothing has been presented yet.
type NoFrames struct{}

func (NoFrames) Logical() (*image.RGBA, bool) { return nil, false }
func (NoFrames) Scaled() (*image.RGBA, bool)  { return nil, false }

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}
