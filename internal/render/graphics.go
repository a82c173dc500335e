package render

import "github.com/rook-computer/pixelpad/internal/geom"

const defaultCommandCapacity = 128

// Graphics is the per-tick command buffer handed to client code. Drawing
// calls only record commands; nothing touches pixels until the scheduler
// passes Commands to the backend. Calls that can never produce a visible
// pixel are dropped here instead of in the rasterizer.
//
// A Graphics belongs to a single tick and must not be retained by client
// code after the draw callback returns.
type Graphics struct {
	commands []Command

	logicalWidth  int
	logicalHeight int
	windowWidth   int
	windowHeight  int
}

func NewGraphics(logicalWidth, logicalHeight, windowWidth, windowHeight int) *Graphics {
	return &Graphics{
		commands:      make([]Command, 0, defaultCommandCapacity),
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
	}
}

// BeginFrame discards every recorded command, keeping the allocation.
func (g *Graphics) BeginFrame() {
	clear(g.commands)
	g.commands = g.commands[:0]
}

// Commands returns the commands recorded since the last BeginFrame in paint
// order. The slice is only valid until the next BeginFrame.
func (g *Graphics) Commands() []Command { return g.commands }

// LogicalSize is the canvas size all drawing coordinates refer to.
func (g *Graphics) LogicalSize() (width, height int) { return g.logicalWidth, g.logicalHeight }

// WindowSize is the current physical window size.
func (g *Graphics) WindowSize() (width, height int) { return g.windowWidth, g.windowHeight }

// SetWindowSize is called by the scheduler when the host reports a resize.
func (g *Graphics) SetWindowSize(width, height int) {
	g.windowWidth = width
	g.windowHeight = height
}

// Clear fills the whole canvas. Most frames start with it, since the pixel
// buffer keeps the previous frame's contents otherwise.
func (g *Graphics) Clear(c Color) {
	g.commands = append(g.commands, ClearCommand(c))
}

// Pixel sets one pixel. Negative coordinates are dropped.
func (g *Graphics) Pixel(pos geom.Point, c Color) {
	if pos.X < 0 || pos.Y < 0 {
		return
	}
	g.commands = append(g.commands, PixelCommand(pos, c))
}

// Line draws a one pixel wide segment including both endpoints. Lines with
// both endpoints left of or above the canvas are dropped; partially visible
// lines are clipped per pixel by the rasterizer.
func (g *Graphics) Line(start, end geom.Point, c Color) {
	if start.X < 0 && end.X < 0 {
		return
	}
	if start.Y < 0 && end.Y < 0 {
		return
	}
	g.commands = append(g.commands, LineCommand(start, end, c))
}

// Rect fills the rectangle [pos, pos+size). A negative origin is moved to 0
// and the size shrunk by the overhang; nothing is recorded if no area is
// left.
func (g *Graphics) Rect(pos, size geom.Point, c Color) {
	if pos.X < 0 {
		size.X += pos.X
		pos.X = 0
	}
	if pos.Y < 0 {
		size.Y += pos.Y
		pos.Y = 0
	}
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	g.commands = append(g.commands, RectCommand(pos, size, c))
}

// Circle draws a one pixel wide circle outline.
func (g *Graphics) Circle(center geom.Point, radius int32, c Color) {
	g.commands = append(g.commands, CircleCommand(center, radius, c))
}

// Triangle draws the outline p1 -> p2 -> p3 -> p1. It is never filled.
func (g *Graphics) Triangle(p1, p2, p3 geom.Point, c Color) {
	g.commands = append(g.commands, TriangleCommand(p1, p2, p3, c))
}

// Text draws text with the built-in 8x8 bitmap font, pos being the top-left
// corner of the first glyph. There is no wrapping.
func (g *Graphics) Text(pos geom.Point, text string, c Color) {
	g.commands = append(g.commands, TextCommand(pos, text, c))
}
