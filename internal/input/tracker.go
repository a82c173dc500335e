package input

import "github.com/rook-computer/pixelpad/internal/geom"

// Reader is the read-only view of the input state handed to draw code.
type Reader interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	KeyReleased(k Key) bool
	MouseDown(b MouseButton) bool
	MousePressed(b MouseButton) bool
	MouseReleased(b MouseButton) bool
	MousePosition() (geom.Point, bool)
	WindowResized() (width, height int, ok bool)
	CloseRequested() bool
}

type edge struct {
	held     bool
	pressed  bool
	released bool
}

func (e *edge) press() {
	if e.held {
		return
	}
	e.held = true
	e.pressed = true
}

func (e *edge) release() {
	if !e.held {
		return
	}
	e.held = false
	e.released = true
}

func (e *edge) down() bool { return e.held || e.released }

// Tracker folds a raw event stream into per-tick button state. Each key or
// button moves Up -> Held on a press and Held -> Up on a release; the
// transition is visible as pressed or released for exactly one tick.
//
// A Tracker is owned by the scheduler goroutine and is not safe for
// concurrent use.
type Tracker struct {
	keys  [keyCount]edge
	mouse [mouseCount]edge

	cursorX, cursorY float64
	hasCursor        bool
	focused          bool

	mousePos geom.Point
	mouseOK  bool

	resizeW, resizeH int
	resized          bool
	closeRequested   bool
}

func NewTracker() *Tracker {
	return &Tracker{focused: true}
}

// Step starts a new tick: the edge sets and the one-shot resize and close
// notifications from the previous tick are dropped.
func (t *Tracker) Step() {
	t.clearEdges()
	t.closeRequested = false
}

// EndStep runs after the frame has been drawn so no edge is reported twice.
func (t *Tracker) EndStep() {
	t.clearEdges()
}

func (t *Tracker) clearEdges() {
	for i := range t.keys {
		t.keys[i].pressed = false
		t.keys[i].released = false
	}
	for i := range t.mouse {
		t.mouse[i].pressed = false
		t.mouse[i].released = false
	}
	t.resized = false
}

// Process folds one event into the current tick.
func (t *Tracker) Process(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if e.Key == KeyUnknown || e.Key >= keyCount {
			return
		}
		if e.Down {
			t.keys[e.Key].press()
		} else {
			t.keys[e.Key].release()
		}
	case MouseButtonEvent:
		if e.Button == MouseUnknown || e.Button >= mouseCount {
			return
		}
		if e.Down {
			t.mouse[e.Button].press()
		} else {
			t.mouse[e.Button].release()
		}
	case CursorMoved:
		t.cursorX, t.cursorY = e.X, e.Y
		t.hasCursor = true
	case CursorLeft:
		t.hasCursor = false
	case Focus:
		t.focused = e.Focused
		if !e.Focused {
			// Releases for keys held while unfocused never arrive.
			t.releaseAll()
		}
	case Resized:
		if e.Width <= 0 || e.Height <= 0 {
			return
		}
		t.resizeW, t.resizeH = e.Width, e.Height
		t.resized = true
	case CloseRequested:
		t.closeRequested = true
	}
}

func (t *Tracker) releaseAll() {
	for i := range t.keys {
		t.keys[i].release()
	}
	for i := range t.mouse {
		t.mouse[i].release()
	}
}

// UpdateMouseMapping converts the latest physical cursor sample into logical
// coordinates for this tick.
func (t *Tracker) UpdateMouseMapping(logicalW, logicalH, physicalW, physicalH int) {
	if !t.hasCursor || !t.focused || physicalW <= 0 || physicalH <= 0 {
		t.mouseOK = false
		return
	}
	x := t.cursorX * float64(logicalW) / float64(physicalW)
	y := t.cursorY * float64(logicalH) / float64(physicalH)
	t.mousePos = geom.PtFloats(x, y)
	t.mouseOK = true
}

// KeyDown is true on every tick the key is physically down, including the
// tick it was released on.
func (t *Tracker) KeyDown(k Key) bool {
	return k < keyCount && t.keys[k].down()
}

func (t *Tracker) KeyPressed(k Key) bool {
	return k < keyCount && t.keys[k].pressed
}

func (t *Tracker) KeyReleased(k Key) bool {
	return k < keyCount && t.keys[k].released
}

func (t *Tracker) MouseDown(b MouseButton) bool {
	return b < mouseCount && t.mouse[b].down()
}

func (t *Tracker) MousePressed(b MouseButton) bool {
	return b < mouseCount && t.mouse[b].pressed
}

func (t *Tracker) MouseReleased(b MouseButton) bool {
	return b < mouseCount && t.mouse[b].released
}

// MousePosition is the cursor in logical coordinates. ok is false before the
// first cursor sample, after the cursor left the window and while the
// window is unfocused. The position may lie outside the logical canvas.
func (t *Tracker) MousePosition() (pos geom.Point, ok bool) {
	return t.mousePos, t.mouseOK
}

// WindowResized reports the physical size from a resize this tick.
func (t *Tracker) WindowResized() (width, height int, ok bool) {
	if !t.resized {
		return 0, 0, false
	}
	return t.resizeW, t.resizeH, true
}

func (t *Tracker) CloseRequested() bool { return t.closeRequested }
