package render

import (
	"path/filepath"
	"testing"
)

var _ Presenter = (*FBPresenter)(nil)

func TestFBPresenterCloseWithoutDevice(t *testing.T) {
	p := &FBPresenter{}
	for i := 0; i < 2; i++ {
		if err := p.Close(); err != nil {
			t.Fatalf("Close #%d: %v", i+1, err)
		}
	}
}

func TestOpenFBPresenterMissingDevice(t *testing.T) {
	if _, err := OpenFBPresenter(filepath.Join(t.TempDir(), "fb9")); err == nil {
		t.Fatal("OpenFBPresenter on a missing device succeeded")
	}
}
