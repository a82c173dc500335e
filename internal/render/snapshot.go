package render

import (
	"image"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// ScaleNearest scales src over all of dst with nearest-neighbour sampling,
// the same mapping a physical window applies to the logical canvas.
func ScaleNearest(dst draw.Image, src image.Image) {
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// SnapshotPresenter keeps a copy of the most recent frame in memory. It backs
// the headless host and the preview server, so it may be read from other
// goroutines while the scheduler presents.
type SnapshotPresenter struct {
	mu       sync.RWMutex
	frame    *image.RGBA
	width    int
	height   int
	presents uint64
}

func NewSnapshotPresenter(windowWidth, windowHeight int) *SnapshotPresenter {
	return &SnapshotPresenter{width: windowWidth, height: windowHeight}
}

func (p *SnapshotPresenter) Resize(width, height int) error {
	p.mu.Lock()
	p.width, p.height = width, height
	p.mu.Unlock()
	return nil
}

func (p *SnapshotPresenter) Present(frame *image.RGBA) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frame == nil || p.frame.Rect != frame.Rect {
		p.frame = image.NewRGBA(frame.Rect)
	}
	copy(p.frame.Pix, frame.Pix)
	p.presents++
	return nil
}

// Presents is the number of frames presented so far.
func (p *SnapshotPresenter) Presents() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.presents
}

// Logical returns a copy of the last frame at logical resolution.
func (p *SnapshotPresenter) Logical() (*image.RGBA, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.frame == nil {
		return nil, false
	}
	out := image.NewRGBA(p.frame.Rect)
	copy(out.Pix, p.frame.Pix)
	return out, true
}

// Scaled returns the last frame scaled to the current window size.
func (p *SnapshotPresenter) Scaled() (*image.RGBA, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.frame == nil || p.width <= 0 || p.height <= 0 {
		return nil, false
	}
	out := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	ScaleNearest(out, p.frame)
	return out, true
}
