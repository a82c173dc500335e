package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// FBPresenter presents frames on a Linux framebuffer device. The device has
// a fixed mode, so window resizes only get logged.
type FBPresenter struct {
	dev     *fb.Device
	scratch *image.RGBA
	Logger  logger
}

// OpenFBPresenter opens a framebuffer device such as /dev/fb0.
func OpenFBPresenter(path string) (*FBPresenter, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	bounds := dev.Bounds()
	return &FBPresenter{
		dev:     dev,
		scratch: image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())),
	}, nil
}

// Size is the physical resolution of the device.
func (p *FBPresenter) Size() (width, height int) {
	bounds := p.dev.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (p *FBPresenter) Resize(width, height int) error {
	if p.Logger != nil {
		w, h := p.Size()
		p.Logger.Infof("fb", "resize to %dx%d ignored, device mode is %dx%d", width, height, w, h)
	}
	return nil
}

func (p *FBPresenter) Present(frame *image.RGBA) error {
	ScaleNearest(p.scratch, frame)
	return blitToFB(p.dev, p.scratch)
}

func (p *FBPresenter) Close() error {
	if p.dev == nil {
		return nil
	}
	p.dev.Close()
	p.dev = nil
	return nil
}

// blitToFB copies a device-sized image onto the framebuffer. Alpha is forced
// opaque because most framebuffer formats treat the byte as padding.
func blitToFB(dev *fb.Device, img *image.RGBA) error {
	bounds := dev.Bounds()
	width := min(bounds.Dx(), img.Rect.Dx())
	height := min(bounds.Dy(), img.Rect.Dy())
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			i := x * 4
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: 0xFF})
		}
	}
	return nil
}
