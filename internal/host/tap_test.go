package host_test

import (
	"context"
	"image"
	"testing"

	"github.com/rook-computer/pixelpad/internal/config"
	"github.com/rook-computer/pixelpad/internal/host"
	"github.com/rook-computer/pixelpad/internal/host/headless"
	"github.com/rook-computer/pixelpad/internal/render"
)

func TestTapMirrorsFrames(t *testing.T) {
	inner := headless.New()
	tap := render.NewSnapshotPresenter(0, 0)
	h := host.Tap(inner, tap)
	defer h.Close()

	p, err := h.Open(context.Background(), config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Present(image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatal(err)
	}
	if tap.Presents() != 1 || inner.Snapshot().Presents() != 1 {
		t.Fatalf("presents tap=%d inner=%d", tap.Presents(), inner.Snapshot().Presents())
	}
	if _, ok := h.(host.DropCounter); !ok {
		t.Fatal("tapped host lost DropCounter")
	}
}
