package input

// Key identifies a physical keyboard key independent of layout. Hosts map
// their native codes onto this set; anything without a mapping arrives as
// KeyUnknown and is ignored by the Tracker.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = [keyCount]string{
	"Unknown",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"Space", "Enter", "Escape", "Tab", "Backspace",
	"Left", "Right", "Up", "Down",
	"Shift", "Control", "Alt",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// KeyFromRune maps a letter, digit or space to its key. Letters are case
// insensitive.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	case r == ' ':
		return KeySpace
	}
	return KeyUnknown
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle

	mouseCount
)

var mouseNames = [mouseCount]string{"Unknown", "Left", "Right", "Middle"}

func (b MouseButton) String() string {
	if b >= mouseCount {
		return "Unknown"
	}
	return mouseNames[b]
}
