package input

import "fmt"

// Event is one raw window or device event delivered by a host. The concrete
// types below are the complete set.
type Event interface {
	isEvent()
}

// KeyEvent is a key transition. Hosts may deliver repeated Down events while
// a key is held; the Tracker ignores them.
type KeyEvent struct {
	Key  Key
	Down bool
}

type MouseButtonEvent struct {
	Button MouseButton
	Down   bool
}

// CursorMoved carries the cursor position in physical window pixels.
type CursorMoved struct {
	X, Y float64
}

// CursorLeft is sent when the cursor leaves the window.
type CursorLeft struct{}

// Focus reports keyboard focus changes.
type Focus struct {
	Focused bool
}

// Resized reports a new physical window size. Zero-area sizes are delivered
// as-is (minimised windows) and filtered by the consumer.
type Resized struct {
	Width, Height int
}

type CloseRequested struct{}

func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (CursorMoved) isEvent()      {}
func (CursorLeft) isEvent()       {}
func (Focus) isEvent()            {}
func (Resized) isEvent()          {}
func (CloseRequested) isEvent()   {}

func (e KeyEvent) String() string {
	return fmt.Sprintf("key %v down=%t", e.Key, e.Down)
}

func (e MouseButtonEvent) String() string {
	return fmt.Sprintf("mouse %v down=%t", e.Button, e.Down)
}

func (e Resized) String() string {
	return fmt.Sprintf("resized %dx%d", e.Width, e.Height)
}
