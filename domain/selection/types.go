package selection

import "image"

// State enumerates the states of the pointer-driven selection.
type State int

const (
	StateIdle State = iota
	StateSelecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Listener is called after every pointer event or reset that changed the tracker.
type Listener func(prev, next State)

// Contract is the selection API the canvas model and presenters depend on.
type Contract interface {
	PointerDown(x, y int)
	PointerMove(x, y int) bool
	PointerUp(x, y int)
	Reset()
	Current() State
	Selecting() bool
	Selection() (x, y, w, h int)
	Rect() image.Rectangle
}
