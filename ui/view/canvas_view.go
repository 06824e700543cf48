package view

import (
	"image"

	"github.com/soocke/pixel-trimmer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandler receives left-button pointer events in canvas coordinates.
type PointerHandler interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp(x, y int)
}

// CanvasView shows the composed image and forwards mouse drags.
type CanvasView interface {
	ShowImage(img image.Image)
	SetBackground(color string)
	Widget() *LabelWidget
}

type canvasView struct {
	label     *LabelWidget
	width     int
	height    int
	prevPhoto *Img // last Tk photo image instance, deleted before replacement
}

// NewCanvasView creates a fixed-size image label of w x h pixels with the
// image anchored top-left so event coordinates equal image coordinates.
func NewCanvasView(w, h int, bg string, handler PointerHandler) CanvasView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Width(w), Height(h), Anchor("nw"), Borderwidth(0), Background(bg), Cursor("crosshair"))
	v := &canvasView{label: lbl, width: w, height: h, prevPhoto: photo}
	if handler != nil {
		Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) { handler.PointerDown(e.X, e.Y) }))
		Bind(lbl, "<B1-Motion>", Command(func(e *Event) { handler.PointerMove(e.X, e.Y) }))
		Bind(lbl, "<ButtonRelease-1>", Command(func(e *Event) { handler.PointerUp(e.X, e.Y) }))
	}
	return v
}

func (v *canvasView) Widget() *LabelWidget { return v.label }

// SetBackground recolours the area around the image.
func (v *canvasView) SetBackground(color string) {
	if v == nil || v.label == nil {
		return
	}
	v.label.Configure(Background(color))
}

// ShowImage replaces the displayed photo. A nil image shows an empty canvas.
func (v *canvasView) ShowImage(img image.Image) {
	if v == nil || v.label == nil {
		return
	}
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}
