package app

import (
	"time"

	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Frame is what draw code sees during one tick. It must not be kept after
// the callback returns.
type Frame struct {
	tick    uint64
	elapsed time.Duration
	gfx     *render.Graphics
	input   input.Reader
	app     *App
}

// Dt is the time since the previous tick in seconds. Stalls longer than
// 100ms are reported as one nominal frame interval.
func (f *Frame) Dt() float64 { return f.elapsed.Seconds() }

func (f *Frame) Elapsed() time.Duration { return f.elapsed }

// Tick counts from 1.
func (f *Frame) Tick() uint64 { return f.tick }

func (f *Frame) Graphics() *render.Graphics { return f.gfx }

func (f *Frame) Input() input.Reader { return f.input }

// Close ends the loop once this tick has been presented.
func (f *Frame) Close() { f.app.Close() }

// Screen draws one tick.
type Screen interface {
	Draw(f *Frame)
}

// DrawFunc adapts a plain function to Screen.
type DrawFunc func(f *Frame)

func (fn DrawFunc) Draw(f *Frame) { fn(f) }
