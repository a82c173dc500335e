package host

import (
	"context"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/render"
)

// Tap wraps h so every frame it presents is also given to tap.
func Tap(h Host, tap render.Presenter) Host {
	return &tapped{Host: h, tap: tap}
}

type tapped struct {
	Host
	tap render.Presenter
}

func (t *tapped) Open(ctx context.Context, cfg config.Config) (render.Presenter, error) {
	p, err := t.Host.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return render.Tee{p, t.tap}, nil
}

// Dropped forwards to the wrapped host when it counts drops.
func (t *tapped) Dropped() uint64 {
	if dc, ok := t.Host.(DropCounter); ok {
		return dc.Dropped()
	}
	return 0
}
