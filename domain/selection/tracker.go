package selection

import (
	"image"
	"log/slog"
)

// Tracker records a single rectangular selection from pointer events.
//
// The origin is fixed at pointer-down and the current corner follows the
// pointer while a drag is in progress. Values survive pointer-up and are only
// replaced by the next pointer-down or by Reset. The zero value is usable.
type Tracker struct {
	state            State
	originX, originY int
	curX, curY       int
	logger           *slog.Logger
	listeners        []Listener
}

// NewTracker returns an idle tracker.
func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{logger: logger}
}

// AddListener registers l for state notifications.
func (t *Tracker) AddListener(l Listener) {
	if t == nil || l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// PointerDown starts a new selection at (x, y).
func (t *Tracker) PointerDown(x, y int) {
	if t == nil {
		return
	}
	t.originX, t.originY = x, y
	t.curX, t.curY = x, y
	t.transition(StateSelecting)
}

// PointerMove updates the current corner while selecting. It reports whether
// the selection changed; moves while idle are ignored.
func (t *Tracker) PointerMove(x, y int) bool {
	if t == nil || t.state != StateSelecting {
		return false
	}
	t.curX, t.curY = x, y
	t.notify(StateSelecting, StateSelecting)
	return true
}

// PointerUp freezes the selection. The release position becomes the current
// corner only if a drag was in progress.
func (t *Tracker) PointerUp(x, y int) {
	if t == nil {
		return
	}
	if t.state == StateSelecting {
		t.curX, t.curY = x, y
	}
	t.transition(StateIdle)
}

// Reset discards the selection and returns to idle.
func (t *Tracker) Reset() {
	if t == nil {
		return
	}
	t.originX, t.originY, t.curX, t.curY = 0, 0, 0, 0
	t.transition(StateIdle)
}

// Current returns the tracker state.
func (t *Tracker) Current() State {
	if t == nil {
		return StateIdle
	}
	return t.state
}

// Selecting reports whether a drag is in progress.
func (t *Tracker) Selecting() bool { return t.Current() == StateSelecting }

// Selection returns the origin and the signed extent of the selection.
// Width and height are negative when the drag went left or up.
func (t *Tracker) Selection() (x, y, w, h int) {
	if t == nil {
		return 0, 0, 0, 0
	}
	return t.originX, t.originY, t.curX - t.originX, t.curY - t.originY
}

// Rect returns the selection with Min at the top-left corner regardless of
// drag direction.
func (t *Tracker) Rect() image.Rectangle {
	if t == nil {
		return image.Rectangle{}
	}
	return image.Rect(t.originX, t.originY, t.curX, t.curY)
}

func (t *Tracker) transition(next State) {
	prev := t.state
	t.state = next
	if prev != next && t.logger != nil {
		t.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	t.notify(prev, next)
}

func (t *Tracker) notify(prev, next State) {
	for _, l := range t.listeners {
		l(prev, next)
	}
}

var _ Contract = (*Tracker)(nil)
