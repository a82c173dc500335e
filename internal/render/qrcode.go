package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/pixelpad/internal/geom"
)

// QRCode records payload as a QR code with its top-left corner at pos. Each
// module is scale logical pixels square; the quiet zone is included and
// painted with bg. An empty payload records nothing.
func (g *Graphics) QRCode(pos geom.Point, payload string, scale int32, fg, bg Color) error {
	if payload == "" {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}

	bitmap := code.Bitmap()
	side := int32(len(bitmap)) * scale
	g.Rect(pos, geom.Pt(side, side), bg)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			origin := pos.Add(geom.Pt(int32(x)*scale, int32(y)*scale))
			g.Rect(origin, geom.Pt(scale, scale), fg)
		}
	}
	return nil
}

// QRCodeSide is the side length in logical pixels QRCode would draw for
// payload, or 0 when it cannot be encoded.
func QRCodeSide(payload string, scale int32) int32 {
	if payload == "" {
		return 0
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return 0
	}
	return int32(len(code.Bitmap())) * max(scale, 1)
}
