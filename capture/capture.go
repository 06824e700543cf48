package capture

import (
	"errors"
	"image"

	"github.com/vova616/screenshot"
)

// ErrEmptyCapture is returned when the screen grab produced no pixels.
var ErrEmptyCapture = errors.New("screen capture returned no image")

// Grab returns a capture of the primary screen.
func Grab() (image.Image, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyCapture
	}
	return img, nil
}
