package render

import (
	"testing"

	"github.com/rook-computer/pixelpad/internal/geom"
)

func newTestGraphics() *Graphics { return NewGraphics(320, 240, 640, 480) }

func TestPixelDropsNegativeCoordinates(t *testing.T) {
	g := newTestGraphics()
	for _, p := range []geom.Point{geom.Pt(-1, 0), geom.Pt(0, -1), geom.Pt(-7, -7)} {
		g.Pixel(p, Red)
	}
	if n := len(g.Commands()); n != 0 {
		t.Fatalf("recorded %d commands for negative pixels, want 0", n)
	}
	g.Pixel(geom.Pt(0, 0), Red)
	if n := len(g.Commands()); n != 1 {
		t.Fatalf("recorded %d commands, want 1", n)
	}
}

func TestLineRejectsSameSideOffCanvas(t *testing.T) {
	tests := []struct {
		name       string
		start, end geom.Point
		recorded   bool
	}{
		{"both left", geom.Pt(-1, 5), geom.Pt(-10, 50), false},
		{"both above", geom.Pt(5, -1), geom.Pt(50, -3), false},
		{"crosses left edge", geom.Pt(-5, 5), geom.Pt(5, 5), true},
		{"opposite corners off canvas", geom.Pt(-5, 10), geom.Pt(10, -5), true},
		{"far right is kept", geom.Pt(1000, 5), geom.Pt(2000, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraphics()
			g.Line(tt.start, tt.end, White)
			if got := len(g.Commands()) == 1; got != tt.recorded {
				t.Fatalf("recorded = %v, want %v", got, tt.recorded)
			}
		})
	}
}

func TestRectNormalizesNegativeOrigin(t *testing.T) {
	tests := []struct {
		name      string
		pos, size geom.Point
		want      *Command
	}{
		{"inside", geom.Pt(3, 4), geom.Pt(10, 5), &Command{Kind: CmdRect, A: geom.Pt(3, 4), B: geom.Pt(10, 5)}},
		{"left overhang", geom.Pt(-4, 2), geom.Pt(10, 5), &Command{Kind: CmdRect, A: geom.Pt(0, 2), B: geom.Pt(6, 5)}},
		{"top overhang", geom.Pt(2, -3), geom.Pt(10, 5), &Command{Kind: CmdRect, A: geom.Pt(2, 0), B: geom.Pt(10, 2)}},
		{"fully left", geom.Pt(-10, 2), geom.Pt(10, 5), nil},
		{"fully above", geom.Pt(2, -6), geom.Pt(10, 5), nil},
		{"zero width", geom.Pt(2, 2), geom.Pt(0, 5), nil},
		{"negative height", geom.Pt(2, 2), geom.Pt(4, -5), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraphics()
			g.Rect(tt.pos, tt.size, Blue)
			cmds := g.Commands()
			if tt.want == nil {
				if len(cmds) != 0 {
					t.Fatalf("recorded %v, want nothing", cmds)
				}
				return
			}
			if len(cmds) != 1 {
				t.Fatalf("recorded %d commands, want 1", len(cmds))
			}
			if cmds[0].A != tt.want.A || cmds[0].B != tt.want.B {
				t.Fatalf("recorded %v, want origin %v size %v", cmds[0], tt.want.A, tt.want.B)
			}
		})
	}
}

func TestCircleTriangleTextAlwaysRecorded(t *testing.T) {
	g := newTestGraphics()
	g.Circle(geom.Pt(-100, -100), 5, Red)
	g.Triangle(geom.Pt(-1, -1), geom.Pt(-2, -2), geom.Pt(-3, -3), Red)
	g.Text(geom.Pt(-50, -50), "hidden", Red)

	want := []CommandKind{CmdCircle, CmdTriangle, CmdText}
	cmds := g.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Kind, k)
		}
	}
}

func TestBeginFrameResetsAndKeepsOrder(t *testing.T) {
	g := newTestGraphics()
	g.Clear(Black)
	g.Pixel(geom.Pt(1, 1), White)
	g.BeginFrame()
	if n := len(g.Commands()); n != 0 {
		t.Fatalf("after BeginFrame: %d commands, want 0", n)
	}
	g.BeginFrame()
	if n := len(g.Commands()); n != 0 {
		t.Fatalf("after second BeginFrame: %d commands, want 0", n)
	}

	g.Clear(Black)
	g.Text(geom.Pt(0, 0), "hi", White)
	g.Pixel(geom.Pt(2, 2), Red)
	kinds := []CommandKind{CmdClear, CmdText, CmdPixel}
	for i, cmd := range g.Commands() {
		if cmd.Kind != kinds[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Kind, kinds[i])
		}
	}
}

func TestBeginFrameKeepsCapacity(t *testing.T) {
	g := newTestGraphics()
	for i := 0; i < defaultCommandCapacity; i++ {
		g.Pixel(geom.Pt(1, 1), White)
	}
	before := cap(g.Commands())
	g.BeginFrame()
	if after := cap(g.Commands()); after != before {
		t.Fatalf("capacity changed from %d to %d", before, after)
	}
}

func TestSizes(t *testing.T) {
	g := newTestGraphics()
	if w, h := g.LogicalSize(); w != 320 || h != 240 {
		t.Errorf("LogicalSize = %dx%d", w, h)
	}
	g.SetWindowSize(800, 600)
	if w, h := g.WindowSize(); w != 800 || h != 600 {
		t.Errorf("WindowSize = %dx%d", w, h)
	}
}

func TestCommandKindString(t *testing.T) {
	if got := CmdTriangle.String(); got != "Triangle" {
		t.Errorf("CmdTriangle.String() = %q", got)
	}
	if got := CommandKind(200).String(); got != "Unknown" {
		t.Errorf("CommandKind(200).String() = %q", got)
	}
}

func TestRGBAClampsAlpha(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{2.5, 255},
	}
	for _, tt := range tests {
		if got := RGBA(1, 2, 3, tt.a); got.A != tt.want || got.R != 1 || got.G != 2 || got.B != 3 {
			t.Errorf("RGBA(1, 2, 3, %v) = %+v, want alpha %d", tt.a, got, tt.want)
		}
	}
	if RGB(9, 8, 7).A != 255 {
		t.Error("RGB should be opaque")
	}
}
