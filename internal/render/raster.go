package render

import (
	"image"

	"github.com/rook-computer/pixelpad/internal/geom"
	"github.com/rook-computer/pixelpad/internal/render/font"
	"github.com/rook-computer/pixelpad/internal/render/layout"
)

// Rasterizer owns the logical pixel buffer and turns commands into byte
// writes. The buffer is sized once to the logical resolution; window resizes
// never reach it.
type Rasterizer struct {
	frame  *image.RGBA
	width  uint32
	height uint32

	// span holds one row of a rect fill, reused across commands.
	span []byte
}

func NewRasterizer(width, height int) *Rasterizer {
	width, height = max(width, 0), max(height, 0)
	return &Rasterizer{
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  uint32(width),
		height: uint32(height),
	}
}

// Frame returns the pixel buffer. Pix is laid out as width*height RGBA
// quadruplets with no row padding.
func (r *Rasterizer) Frame() *image.RGBA { return r.frame }

func (r *Rasterizer) Size() (width, height int) { return int(r.width), int(r.height) }

// At returns the color stored at (x, y), or the zero Color when outside the
// buffer.
func (r *Rasterizer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= int(r.width) || y >= int(r.height) {
		return Color{}
	}
	i := (y*int(r.width) + x) * 4
	p := r.frame.Pix[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Rasterize applies cmds in order. Later commands overwrite earlier ones.
func (r *Rasterizer) Rasterize(cmds []Command) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case CmdClear:
			r.clear(cmd.Color)
		case CmdPixel:
			x, y := cmd.A.Clamped()
			r.setPixel(x, y, cmd.Color)
		case CmdLine:
			r.line(cmd.A, cmd.B, cmd.Color)
		case CmdRect:
			r.rect(cmd.A, cmd.B, cmd.Color)
		case CmdCircle:
			r.circle(cmd.A, cmd.Radius, cmd.Color)
		case CmdTriangle:
			r.triangle(cmd.A, cmd.B, cmd.C, cmd.Color)
		case CmdText:
			r.text(cmd.A, cmd.Text, cmd.Color)
		}
	}
}

func (r *Rasterizer) clear(c Color) {
	px := c.Bytes()
	pix := r.frame.Pix
	if len(pix) == 0 {
		return
	}
	copy(pix, px[:])
	// Double the filled prefix until the buffer is full.
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

func (r *Rasterizer) setPixel(x, y uint32, c Color) {
	if x >= r.width || y >= r.height {
		return
	}
	i := (int(y)*int(r.width) + int(x)) * 4
	p := r.frame.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// rect fills [pos, pos+size) clipped to the canvas with one copy per row.
// A negative origin shortens the rect rather than shifting it.
func (r *Rasterizer) rect(pos, size geom.Point, c Color) {
	startX, endX := layout.ClampSpan(pos.X, size.X, r.width)
	startY, endY := layout.ClampSpan(pos.Y, size.Y, r.height)
	if startX >= endX || startY >= endY {
		return
	}

	rowBytes := int(endX-startX) * 4
	if cap(r.span) < rowBytes {
		r.span = make([]byte, rowBytes)
	}
	span := r.span[:rowBytes]
	px := c.Bytes()
	for i := 0; i < rowBytes; i += 4 {
		copy(span[i:i+4], px[:])
	}

	stride := int(r.width) * 4
	offset := int(startY)*stride + int(startX)*4
	for row := startY; row < endY; row++ {
		copy(r.frame.Pix[offset:offset+rowBytes], span)
		offset += stride
	}
}

// line is integer Bresenham. When both step conditions hold in the same
// iteration the point moves diagonally.
func (r *Rasterizer) line(p0, p1 geom.Point, c Color) {
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		if x0 >= 0 && y0 >= 0 {
			r.setPixel(uint32(x0), uint32(y0), c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// circle is the midpoint algorithm over one octant, mirrored eight ways.
// Points with a negative coordinate are skipped here; the upper bound is
// left to setPixel.
func (r *Rasterizer) circle(center geom.Point, radius int32, c Color) {
	cx, cy := int(center.X), int(center.Y)
	x, y, err := int(radius), 0, 0

	for x >= y {
		octants := [8][2]int{
			{cx + x, cy + y},
			{cx + y, cy + x},
			{cx - y, cy + x},
			{cx - x, cy + y},
			{cx - x, cy - y},
			{cx - y, cy - x},
			{cx + y, cy - x},
			{cx + x, cy - y},
		}
		for _, p := range octants {
			if p[0] >= 0 && p[1] >= 0 {
				r.setPixel(uint32(p[0]), uint32(p[1]), c)
			}
		}

		y++
		err += 2*y + 1
		for err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (r *Rasterizer) triangle(p1, p2, p3 geom.Point, c Color) {
	r.line(p1, p2, c)
	r.line(p2, p3, c)
	r.line(p3, p1, c)
}

// text blits 8x8 glyphs left to right. Runes outside the font still take
// up one advance.
func (r *Rasterizer) text(pos geom.Point, s string, c Color) {
	cursorX, cursorY := int(pos.X), int(pos.Y)
	for _, ch := range s {
		rows, ok := font.Glyph(ch)
		if ok {
			for row := 0; row < font.Height; row++ {
				if rows[row] == 0 {
					continue
				}
				py := cursorY + row
				if py < 0 || py >= int(r.height) {
					continue
				}
				for col := 0; col < font.Width; col++ {
					if !font.Set(rows, col, row) {
						continue
					}
					px := cursorX + col
					if px < 0 || px >= int(r.width) {
						continue
					}
					r.setPixel(uint32(px), uint32(py), c)
				}
			}
		}
		cursorX += font.Advance
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
