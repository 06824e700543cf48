package model

import (
	"image"
	"sync/atomic"

	"github.com/soocke/pixel-trimmer-go/domain/selection"
	"github.com/soocke/pixel-trimmer-go/ui/images"
)

// CanvasModel holds the loaded image, its display copy and the selection
// tracked over the display. Coordinates handed to the tracker are display
// (canvas) coordinates. Updates occur on the UI thread; only Pixels may be
// read from other goroutines.
type CanvasModel struct {
	source  image.Image
	display image.Image
	mapping images.Mapping
	maxW    int
	maxH    int
	pixels  atomic.Int64

	Tracker selection.Contract

	active images.OutlineStyle
	frozen images.OutlineStyle
}

// NewCanvasModel returns a model whose display copy fits maxW x maxH.
func NewCanvasModel(tracker selection.Contract, maxW, maxH int, active, frozen images.OutlineStyle) *CanvasModel {
	if tracker == nil {
		tracker = selection.NewTracker(nil)
	}
	return &CanvasModel{Tracker: tracker, maxW: maxW, maxH: maxH, active: active, frozen: frozen, mapping: images.Mapping{ScaleX: 1, ScaleY: 1}}
}

// SetImage replaces the bitmap. The selection is left untouched.
func (m *CanvasModel) SetImage(img image.Image) {
	if m == nil {
		return
	}
	m.source = img
	if img == nil {
		m.display = nil
		m.mapping = images.Mapping{ScaleX: 1, ScaleY: 1}
		m.pixels.Store(0)
		return
	}
	m.display = images.ScaleToFit(img, m.maxW, m.maxH)
	m.mapping = images.NewMapping(img, m.display)
	b := img.Bounds()
	m.pixels.Store(int64(b.Dx()) * int64(b.Dy()))
}

// Pixels returns the pixel count of the loaded source image. Safe for
// concurrent use.
func (m *CanvasModel) Pixels() int64 {
	if m == nil {
		return 0
	}
	return m.pixels.Load()
}

// SetStyles updates the overlay strokes.
func (m *CanvasModel) SetStyles(active, frozen images.OutlineStyle) {
	if m == nil {
		return
	}
	m.active, m.frozen = active, frozen
}

// Source returns the full resolution image, or nil.
func (m *CanvasModel) Source() image.Image {
	if m == nil {
		return nil
	}
	return m.source
}

// Display returns the scaled image shown on the canvas, or nil.
func (m *CanvasModel) Display() image.Image {
	if m == nil {
		return nil
	}
	return m.display
}

// HasImage reports whether a bitmap is loaded.
func (m *CanvasModel) HasImage() bool { return m.Source() != nil }

// SelectionRect returns the normalized selection in display coordinates.
func (m *CanvasModel) SelectionRect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.Tracker.Rect()
}

// SourceRect maps the normalized selection into source pixels.
func (m *CanvasModel) SourceRect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.mapping.ToSource(m.Tracker.Rect())
}

// Render composes the display image with the selection outline. While a drag
// is in progress the raw corners are stroked in the active style; a released,
// non-empty selection is stroked in the frozen style. Returns nil when no
// image is loaded.
func (m *CanvasModel) Render() image.Image {
	if m == nil || m.display == nil {
		return nil
	}
	x, y, w, h := m.Tracker.Selection()
	if m.Tracker.Selecting() {
		return images.DrawOutline(m.display, x, y, x+w, y+h, m.active)
	}
	if w != 0 && h != 0 {
		return images.DrawOutline(m.display, x, y, x+w, y+h, m.frozen)
	}
	return m.display
}
