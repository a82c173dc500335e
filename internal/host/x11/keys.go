package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/rook-computer/pixelpad/internal/input"
)

// X11 keysyms (X11/keysymdef.h).
const (
	keysymSpace     = 0x0020
	keysym0         = 0x0030
	keysym9         = 0x0039
	keysymUpperA    = 0x0041
	keysymUpperZ    = 0x005a
	keysymLowerA    = 0x0061
	keysymLowerZ    = 0x007a
	keysymBackSpace = 0xff08
	keysymTab       = 0xff09
	keysymReturn    = 0xff0d
	keysymEscape    = 0xff1b
	keysymLeft      = 0xff51
	keysymUp        = 0xff52
	keysymRight     = 0xff53
	keysymDown      = 0xff54
	keysymKPEnter   = 0xff8d
	keysymF1        = 0xffbe
	keysymF12       = 0xffc9
	keysymShiftL    = 0xffe1
	keysymShiftR    = 0xffe2
	keysymControlL  = 0xffe3
	keysymControlR  = 0xffe4
	keysymAltL      = 0xffe9
	keysymAltR      = 0xffea
)

func keyFromKeysym(sym xproto.Keysym) input.Key {
	switch {
	case sym >= keysymLowerA && sym <= keysymLowerZ:
		return input.KeyA + input.Key(sym-keysymLowerA)
	case sym >= keysymUpperA && sym <= keysymUpperZ:
		return input.KeyA + input.Key(sym-keysymUpperA)
	case sym >= keysym0 && sym <= keysym9:
		return input.Key0 + input.Key(sym-keysym0)
	case sym >= keysymF1 && sym <= keysymF12:
		return input.KeyF1 + input.Key(sym-keysymF1)
	}
	switch sym {
	case keysymSpace:
		return input.KeySpace
	case keysymReturn, keysymKPEnter:
		return input.KeyEnter
	case keysymEscape:
		return input.KeyEscape
	case keysymTab:
		return input.KeyTab
	case keysymBackSpace:
		return input.KeyBackspace
	case keysymLeft:
		return input.KeyLeft
	case keysymRight:
		return input.KeyRight
	case keysymUp:
		return input.KeyUp
	case keysymDown:
		return input.KeyDown
	case keysymShiftL, keysymShiftR:
		return input.KeyShift
	case keysymControlL, keysymControlR:
		return input.KeyControl
	case keysymAltL, keysymAltR:
		return input.KeyAlt
	}
	return input.KeyUnknown
}

// Core protocol pointer buttons. 4 and 5 are the scroll wheel.
func mouseFromButton(detail xproto.Button) input.MouseButton {
	switch detail {
	case 1:
		return input.MouseLeft
	case 2:
		return input.MouseMiddle
	case 3:
		return input.MouseRight
	}
	return input.MouseUnknown
}

// bgraFromRGBA converts a row of RGBA pixels to the BGRA byte order X
// images use, forcing opaque alpha.
func bgraFromRGBA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = 0xff
	}
}

// isAutoRepeat reports whether a release is the first half of an
// auto-repeat pair: the next queued event presses the same key at the same
// timestamp.
func isAutoRepeat(release xproto.KeyReleaseEvent, queued []xgbutil.EventOrError) bool {
	if len(queued) == 0 {
		return false
	}
	next, ok := queued[0].Event.(xproto.KeyPressEvent)
	return ok && next.Detail == release.Detail && next.Time == release.Time
}
