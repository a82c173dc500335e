// Package headless is an in-memory host. Frames are kept in a
// render.SnapshotPresenter and input is scripted by the caller.
package headless

import (
	"context"
	"image"
	"sync"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/render"
)

type Host struct {
	queue *input.Queue

	mu         sync.Mutex
	snapshot   *render.SnapshotPresenter
	closeAfter uint64
	script     map[uint64][]input.Event
	opened     bool
	closed     bool
}

type Option func(*Host)

// CloseAfter requests a close once n frames have been presented, so the
// scheduler runs n+1 ticks. Zero disables it.
func CloseAfter(n uint64) Option {
	return func(h *Host) { h.closeAfter = n }
}

func New(opts ...Option) *Host {
	h := &Host{
		queue:  input.NewQueue(input.DefaultQueueSize),
		script: map[uint64][]input.Event{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Host) Open(ctx context.Context, cfg config.Config) (render.Presenter, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, host.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.snapshot = render.NewSnapshotPresenter(cfg.WindowWidth, cfg.WindowHeight)
	h.opened = true
	h.flushLocked(0)
	return &presenter{SnapshotPresenter: h.snapshot, host: h}, nil
}

func (h *Host) Events() <-chan input.Event { return h.queue.Events() }

// Push delivers ev on the next tick.
func (h *Host) Push(ev input.Event) bool { return h.queue.Push(ev) }

// At schedules events to be delivered once frame frames have been
// presented, which makes them visible on tick frame+1. At(0, ...) events
// arrive on the first tick.
func (h *Host) At(frame uint64, events ...input.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.opened && frame == 0 {
		for _, ev := range events {
			h.queue.Push(ev)
		}
		return
	}
	h.script[frame] = append(h.script[frame], events...)
}

func (h *Host) Dropped() uint64 { return h.queue.Dropped() }

// Snapshot is the presenter holding the latest frame, or nil before Open.
func (h *Host) Snapshot() *render.SnapshotPresenter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

// Frame returns a copy of the latest frame at logical resolution.
func (h *Host) Frame() (*image.RGBA, bool) {
	snap := h.Snapshot()
	if snap == nil {
		return nil, false
	}
	return snap.Logical()
}

func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.queue.Close()
	return nil
}

func (h *Host) presented(frames uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flushLocked(frames)
	if h.closeAfter > 0 && frames == h.closeAfter {
		h.queue.Push(input.CloseRequested{})
	}
}

func (h *Host) flushLocked(frames uint64) {
	for _, ev := range h.script[frames] {
		h.queue.Push(ev)
	}
	delete(h.script, frames)
}

type presenter struct {
	*render.SnapshotPresenter
	host *Host
}

func (p *presenter) Present(frame *image.RGBA) error {
	if err := p.SnapshotPresenter.Present(frame); err != nil {
		return err
	}
	p.host.presented(p.SnapshotPresenter.Presents())
	return nil
}
