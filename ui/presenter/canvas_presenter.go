package presenter

import (
	"image"

	"github.com/soocke/pixel-trimmer-go/ui/model"
)

// CanvasView displays the composed canvas image. A nil image clears it.
type CanvasView interface {
	ShowImage(img image.Image)
}

// CanvasPresenter routes pointer events into the canvas model and pushes a
// re-rendered image to the view after each change.
type CanvasPresenter struct {
	model *model.CanvasModel
	view  CanvasView
}

func NewCanvasPresenter(m *model.CanvasModel, view CanvasView) *CanvasPresenter {
	return &CanvasPresenter{model: m, view: view}
}

// Model exposes the underlying canvas model.
func (p *CanvasPresenter) Model() *model.CanvasModel {
	if p == nil {
		return nil
	}
	return p.model
}

// PointerDown starts a selection and redraws.
func (p *CanvasPresenter) PointerDown(x, y int) {
	if p == nil || p.model == nil {
		return
	}
	p.model.Tracker.PointerDown(x, y)
	p.Redraw()
}

// PointerMove extends the selection; redraws only when a drag is in progress.
func (p *CanvasPresenter) PointerMove(x, y int) {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Tracker.PointerMove(x, y) {
		p.Redraw()
	}
}

// PointerUp freezes the selection and redraws once so the final frame
// matches the release position.
func (p *CanvasPresenter) PointerUp(x, y int) {
	if p == nil || p.model == nil {
		return
	}
	p.model.Tracker.PointerUp(x, y)
	p.Redraw()
}

// Reset discards the selection and redraws.
func (p *CanvasPresenter) Reset() {
	if p == nil || p.model == nil {
		return
	}
	p.model.Tracker.Reset()
	p.Redraw()
}

// SetImage replaces the bitmap and redraws.
func (p *CanvasPresenter) SetImage(img image.Image) {
	if p == nil || p.model == nil {
		return
	}
	p.model.SetImage(img)
	p.Redraw()
}

// Redraw renders the model into the view.
func (p *CanvasPresenter) Redraw() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	p.view.ShowImage(p.model.Render())
}
