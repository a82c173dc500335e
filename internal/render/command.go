package render

import (
	"fmt"

	"github.com/rook-computer/pixelpad/internal/geom"
)

// CommandKind identifies the variant held by a Command.
type CommandKind uint8

const (
	CmdClear CommandKind = iota
	CmdPixel
	CmdLine
	CmdRect
	CmdCircle
	CmdTriangle
	CmdText
)

var commandKindNames = [...]string{
	CmdClear:    "Clear",
	CmdPixel:    "Pixel",
	CmdLine:     "Line",
	CmdRect:     "Rect",
	CmdCircle:   "Circle",
	CmdTriangle: "Triangle",
	CmdText:     "Text",
}

func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// Command is one recorded drawing call. The set of kinds is closed and the
// rasterizer switches on Kind; which payload fields are meaningful depends on
// it:
//
//	Clear     Color
//	Pixel     A (position), Color
//	Line      A (start), B (end), Color
//	Rect      A (origin), B (width, height), Color
//	Circle    A (centre), Radius, Color
//	Triangle  A, B, C (vertices), Color
//	Text      A (top-left), Text, Color
//
// Commands are values; once recorded they are not modified.
type Command struct {
	Kind   CommandKind
	Color  Color
	A      geom.Point
	B      geom.Point
	C      geom.Point
	Radius int32
	Text   string
}

func ClearCommand(c Color) Command { return Command{Kind: CmdClear, Color: c} }

func PixelCommand(pos geom.Point, c Color) Command {
	return Command{Kind: CmdPixel, A: pos, Color: c}
}

func LineCommand(start, end geom.Point, c Color) Command {
	return Command{Kind: CmdLine, A: start, B: end, Color: c}
}

func RectCommand(pos, size geom.Point, c Color) Command {
	return Command{Kind: CmdRect, A: pos, B: size, Color: c}
}

func CircleCommand(center geom.Point, radius int32, c Color) Command {
	return Command{Kind: CmdCircle, A: center, Radius: radius, Color: c}
}

func TriangleCommand(p1, p2, p3 geom.Point, c Color) Command {
	return Command{Kind: CmdTriangle, A: p1, B: p2, C: p3, Color: c}
}

func TextCommand(pos geom.Point, text string, c Color) Command {
	return Command{Kind: CmdText, A: pos, Text: text, Color: c}
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case CmdClear:
		return fmt.Sprintf("Clear(%v)", cmd.Color)
	case CmdPixel:
		return fmt.Sprintf("Pixel%v", cmd.A)
	case CmdLine:
		return fmt.Sprintf("Line%v->%v", cmd.A, cmd.B)
	case CmdRect:
		return fmt.Sprintf("Rect%v size %v", cmd.A, cmd.B)
	case CmdCircle:
		return fmt.Sprintf("Circle%v r=%d", cmd.A, cmd.Radius)
	case CmdTriangle:
		return fmt.Sprintf("Triangle%v%v%v", cmd.A, cmd.B, cmd.C)
	case CmdText:
		return fmt.Sprintf("Text%v %q", cmd.A, cmd.Text)
	}
	return cmd.Kind.String()
}
