package trim

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"
)

var (
	// ErrIndexOutOfRange is returned when a history index does not exist.
	ErrIndexOutOfRange = errors.New("trim index out of range")
	// ErrEmptyHistory is returned when an operation needs at least one trim.
	ErrEmptyHistory = errors.New("no trims recorded")
)

// PreviewSize bounds the preview image kept for each trim.
const PreviewSize = 250

// Trim is a confirmed selection cropped out of the source image.
type Trim struct {
	Name    string
	Rect    image.Rectangle // source pixel coordinates
	Image   image.Image
	Preview image.Image
}

// Thumbnailer produces a preview image within a size x size box.
type Thumbnailer func(src image.Image, size int) image.Image

// History is an ordered collection of trims. It is mutated from the UI
// thread only; Count is the one method safe to call from elsewhere.
type History struct {
	items []Trim
	seq   int // last number handed out; names never repeat until Clear
	count atomic.Int64
	thumb Thumbnailer
}

// NewHistory returns an empty history. thumb may be nil, in which case the
// cropped image doubles as its preview.
func NewHistory(thumb Thumbnailer) *History {
	return &History{thumb: thumb}
}

// Add appends a new trim and returns it. Trims are numbered in insertion
// order; numbers of removed trims are not reused.
func (h *History) Add(rect image.Rectangle, img image.Image) Trim {
	h.seq++
	t := Trim{
		Name:  fmt.Sprintf("Trim %d", h.seq),
		Rect:  rect,
		Image: img,
	}
	if h.thumb != nil && img != nil {
		t.Preview = h.thumb(img, PreviewSize)
	} else {
		t.Preview = img
	}
	h.items = append(h.items, t)
	h.count.Store(int64(len(h.items)))
	return t
}

// Get returns the trim at i.
func (h *History) Get(i int) (Trim, error) {
	if i < 0 || i >= len(h.items) {
		return Trim{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return h.items[i], nil
}

// Remove deletes the trim at i, keeping the order of the rest.
func (h *History) Remove(i int) error {
	if i < 0 || i >= len(h.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	h.items = append(h.items[:i], h.items[i+1:]...)
	h.count.Store(int64(len(h.items)))
	return nil
}

// Clear removes every trim and restarts the numbering.
func (h *History) Clear() {
	h.items = nil
	h.seq = 0
	h.count.Store(0)
}

// Len returns the number of trims.
func (h *History) Len() int { return len(h.items) }

// Count is Len for readers outside the UI thread, such as the debug logger.
func (h *History) Count() int64 { return h.count.Load() }

// Items returns a copy of the trims in insertion order.
func (h *History) Items() []Trim {
	out := make([]Trim, len(h.items))
	copy(out, h.items)
	return out
}

// Names returns the trim names in insertion order.
func (h *History) Names() []string {
	names := make([]string, len(h.items))
	for i, t := range h.items {
		names[i] = t.Name
	}
	return names
}
