package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var (
	// ErrNilImage is returned when an operation receives no image.
	ErrNilImage = errors.New("nil image")
	// ErrEmptyRect is returned when a crop rectangle has no area inside the image.
	ErrEmptyRect = errors.New("crop rectangle is empty")
)

// Crop extracts r from src after clamping it to the image bounds.
// The rectangle is given relative to the image origin (0,0), not to
// src.Bounds().Min. Returns the cropped image and the clamped rectangle.
func Crop(src image.Image, r image.Rectangle) (*image.NRGBA, image.Rectangle, error) {
	if src == nil {
		return nil, image.Rectangle{}, ErrNilImage
	}
	b := src.Bounds()
	clamped := r.Canon().Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))
	if clamped.Empty() {
		return nil, image.Rectangle{}, ErrEmptyRect
	}
	out := imaging.Crop(src, clamped.Add(b.Min))
	return out, clamped, nil
}
