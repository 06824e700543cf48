package images

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// OutlineStyle describes how a selection rectangle is stroked.
type OutlineStyle struct {
	Color color.Color
	Width float64
}

// DefaultOutline is a 2px red stroke.
var DefaultOutline = OutlineStyle{Color: color.RGBA{R: 255, A: 255}, Width: 2}

// DrawOutline returns a copy of base with an unfilled rectangle stroked from
// (x0,y0) to (x1,y1). Corners may be given in any order. base is not modified.
func DrawOutline(base image.Image, x0, y0, x1, y1 int, style OutlineStyle) image.Image {
	if base == nil {
		return nil
	}
	if style.Color == nil {
		style.Color = DefaultOutline.Color
	}
	if style.Width <= 0 {
		style.Width = DefaultOutline.Width
	}
	dc := gg.NewContextForImage(base)
	r := image.Rect(x0, y0, x1, y1)
	dc.SetColor(style.Color)
	dc.SetLineWidth(style.Width)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Stroke()
	return dc.Image()
}
