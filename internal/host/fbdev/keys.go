package fbdev

import (
	"github.com/rook-computer/pixelpad/internal/input"
	"github.com/rook-computer/pixelpad/internal/system"
)

// Linux input-event-codes.h key codes. Letters follow the QWERTY rows, so
// they are listed explicitly.
var evdevKeys = map[uint16]input.Key{
	1:   input.KeyEscape,
	2:   input.Key1,
	3:   input.Key2,
	4:   input.Key3,
	5:   input.Key4,
	6:   input.Key5,
	7:   input.Key6,
	8:   input.Key7,
	9:   input.Key8,
	10:  input.Key9,
	11:  input.Key0,
	14:  input.KeyBackspace,
	15:  input.KeyTab,
	16:  input.KeyQ,
	17:  input.KeyW,
	18:  input.KeyE,
	19:  input.KeyR,
	20:  input.KeyT,
	21:  input.KeyY,
	22:  input.KeyU,
	23:  input.KeyI,
	24:  input.KeyO,
	25:  input.KeyP,
	28:  input.KeyEnter,
	29:  input.KeyControl,
	30:  input.KeyA,
	31:  input.KeyS,
	32:  input.KeyD,
	33:  input.KeyF,
	34:  input.KeyG,
	35:  input.KeyH,
	36:  input.KeyJ,
	37:  input.KeyK,
	38:  input.KeyL,
	42:  input.KeyShift,
	44:  input.KeyZ,
	45:  input.KeyX,
	46:  input.KeyC,
	47:  input.KeyV,
	48:  input.KeyB,
	49:  input.KeyN,
	50:  input.KeyM,
	54:  input.KeyShift,
	56:  input.KeyAlt,
	57:  input.KeySpace,
	59:  input.KeyF1,
	60:  input.KeyF2,
	61:  input.KeyF3,
	62:  input.KeyF4,
	63:  input.KeyF5,
	64:  input.KeyF6,
	65:  input.KeyF7,
	66:  input.KeyF8,
	67:  input.KeyF9,
	68:  input.KeyF10,
	87:  input.KeyF11,
	88:  input.KeyF12,
	96:  input.KeyEnter, // keypad enter
	97:  input.KeyControl,
	100: input.KeyAlt,
	103: input.KeyUp,
	105: input.KeyLeft,
	106: input.KeyRight,
	108: input.KeyDown,
}

// translator turns evdev records into window events. Relative pointer
// motion is accumulated into an absolute cursor clamped to the screen.
type translator struct {
	width, height    int
	cursorX, cursorY float64
}

func newTranslator(width, height int) *translator {
	return &translator{
		width:   width,
		height:  height,
		cursorX: float64(width) / 2,
		cursorY: float64(height) / 2,
	}
}

func (t *translator) translate(ev system.InputEvent) (input.Event, bool) {
	switch ev.Type {
	case system.EvKey:
		down := ev.Value != system.KeyReleased
		switch ev.Code {
		case system.BtnLeft:
			return input.MouseButtonEvent{Button: input.MouseLeft, Down: down}, true
		case system.BtnRight:
			return input.MouseButtonEvent{Button: input.MouseRight, Down: down}, true
		case system.BtnMiddle:
			return input.MouseButtonEvent{Button: input.MouseMiddle, Down: down}, true
		}
		key, ok := evdevKeys[ev.Code]
		if !ok {
			return nil, false
		}
		return input.KeyEvent{Key: key, Down: down}, true
	case system.EvRel:
		switch ev.Code {
		case system.RelX:
			t.cursorX = clamp(t.cursorX+float64(ev.Value), 0, float64(t.width-1))
		case system.RelY:
			t.cursorY = clamp(t.cursorY+float64(ev.Value), 0, float64(t.height-1))
		default:
			return nil, false
		}
		return input.CursorMoved{X: t.cursorX, Y: t.cursorY}, true
	}
	return nil, false
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
