package extensions

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/pixelpad/internal/app"
	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render"
)

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// coverageThreshold is the mask alpha from which a pixel counts as ink.
// Commands carry no blending, so glyph edges are thresholded.
const coverageThreshold = 0x80

// Label draws a line of TrueType text on top of every frame. Glyphs are
// rasterised into an alpha mask once per distinct text and replayed as
// Pixel commands.
type Label struct {
	app.NopExtension

	Text  string
	Pos   geom.Point
	Color render.Color

	// Size is in points at 72 DPI, so roughly pixels.
	Size float64
	// FontData is a TrueType or OpenType file; Go Regular when nil.
	FontData []byte
	Logger   logger

	face     font.Face
	rendered bool
	cached   string
	ink      []geom.Point
	inkWidth int
}

func NewLabel(text string, pos geom.Point, size float64, c render.Color) *Label {
	return &Label{Text: text, Pos: pos, Size: size, Color: c}
}

// Init loads the face. A font that cannot be parsed falls back to the
// 7x13 basic font.
func (l *Label) Init() error {
	data := l.FontData
	if data == nil {
		data = goregular.TTF
	}
	size := l.Size
	if size <= 0 {
		size = 16
	}
	face, err := parseFace(data, size)
	if err != nil {
		l.face = basicfont.Face7x13
		if l.Logger != nil {
			l.Logger.Errorf("label", "font parse failed, using basicfont: %v", err)
		}
		return nil
	}
	l.face = face
	return nil
}

// parseFace tries the OpenType parser first and falls back to freetype's
// TrueType parser.
func parseFace(data []byte, size float64) (font.Face, error) {
	if otf, err := opentype.Parse(data); err == nil {
		face, ferr := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// Width is the advance width of the current text in pixels.
func (l *Label) Width() int {
	l.rasterize()
	return l.inkWidth
}

func (l *Label) PostDraw(f *app.Frame) {
	l.rasterize()
	g := f.Graphics()
	for _, p := range l.ink {
		g.Pixel(l.Pos.Add(p), l.Color)
	}
}

func (l *Label) rasterize() {
	if l.face == nil {
		_ = l.Init()
	}
	if l.rendered && l.cached == l.Text {
		return
	}
	l.rendered = true
	l.cached = l.Text
	l.ink = l.ink[:0]
	l.inkWidth = 0
	if l.Text == "" {
		return
	}

	metrics := l.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	drawer := &font.Drawer{Face: l.face}
	width := drawer.MeasureString(l.Text).Ceil()
	l.inkWidth = width
	if width <= 0 || height <= 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer.Dst = mask
	drawer.Src = image.Opaque
	drawer.Dot = fixed.P(0, ascent)
	drawer.DrawString(l.Text)

	for y := 0; y < height; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		for x, a := range row {
			if a >= coverageThreshold {
				l.ink = append(l.ink, geom.PtInts(x, y))
			}
		}
	}
}
