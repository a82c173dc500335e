// Package layout has small rectangle helpers shared by the rasterizer and
// by screens that split the canvas into regions.
package layout

import "image"

// ClampSpan returns the part of [start, start+length) that lies inside
// [0, limit). The end is computed before clamping, so a negative start
// shortens the span. A negative length is empty. lo >= hi means the span
// is empty.
func ClampSpan(start, length int32, limit uint32) (lo, hi uint32) {
	s := int64(start)
	e := s + int64(max(length, 0))
	bound := int64(limit)
	s = min(max(s, 0), bound)
	e = min(max(e, 0), bound)
	return uint32(s), uint32(max(e, s))
}

// Normalize swaps coordinates so Min <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by padding on every side. Padding that would invert the
// rectangle collapses it to its centre line instead.
func Inset(rect image.Rectangle, padding int) image.Rectangle {
	rect = Normalize(rect)
	if padding <= 0 {
		return rect
	}
	padX := min(padding, rect.Dx()/2)
	padY := min(padding, rect.Dy()/2)
	return image.Rect(rect.Min.X+padX, rect.Min.Y+padY, rect.Max.X-padX, rect.Max.Y-padY)
}

// Cells splits rect into a cols x rows grid, row-major. Remainder pixels go
// to the last column and row.
func Cells(rect image.Rectangle, cols, rows int) []image.Rectangle {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	rect = Normalize(rect)
	cellW := rect.Dx() / cols
	cellH := rect.Dy() / rows
	out := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y0 := rect.Min.Y + row*cellH
		y1 := y0 + cellH
		if row == rows-1 {
			y1 = rect.Max.Y
		}
		for col := 0; col < cols; col++ {
			x0 := rect.Min.X + col*cellW
			x1 := x0 + cellW
			if col == cols-1 {
				x1 = rect.Max.X
			}
			out = append(out, image.Rect(x0, y0, x1, y1))
		}
	}
	return out
}

// FitSquare returns the largest square inside rect, centred.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}
