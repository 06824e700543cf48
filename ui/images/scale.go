package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src down so that it fits within maxW x maxH preserving
// aspect ratio. If the source already fits, the original is returned.
// Images are never enlarged.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}

// Thumbnail returns a preview of src that fits in a size x size box.
func Thumbnail(src image.Image, size int) image.Image {
	return ScaleToFit(src, size, size)
}

// Mapping converts between display (canvas) coordinates and source pixels.
// The zero value maps 1:1.
type Mapping struct {
	ScaleX, ScaleY float64
}

// NewMapping computes the factors that take display coordinates back to src.
func NewMapping(src, display image.Image) Mapping {
	if src == nil || display == nil {
		return Mapping{ScaleX: 1, ScaleY: 1}
	}
	sb, db := src.Bounds(), display.Bounds()
	if db.Dx() == 0 || db.Dy() == 0 {
		return Mapping{ScaleX: 1, ScaleY: 1}
	}
	return Mapping{
		ScaleX: float64(sb.Dx()) / float64(db.Dx()),
		ScaleY: float64(sb.Dy()) / float64(db.Dy()),
	}
}

// ToSource maps a display rectangle into source coordinates, truncating
// toward zero. The input is canonicalized first.
func (m Mapping) ToSource(r image.Rectangle) image.Rectangle {
	r = r.Canon()
	sx, sy := m.ScaleX, m.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return image.Rect(
		int(float64(r.Min.X)*sx),
		int(float64(r.Min.Y)*sy),
		int(float64(r.Max.X)*sx),
		int(float64(r.Max.Y)*sy),
	)
}
