package trim

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ResizeMode selects how trims are resized on export.
type ResizeMode string

const (
	ResizeNone       ResizeMode = "none"
	ResizeScale      ResizeMode = "scale"
	ResizeDimensions ResizeMode = "dimensions"
)

// ResizeOptions controls export resizing.
type ResizeOptions struct {
	Mode   ResizeMode
	Scale  float64
	Width  int
	Height int
}

// Size returns the output size for an image of w x h.
func (o ResizeOptions) Size(w, h int) (int, int) {
	switch o.Mode {
	case ResizeScale:
		if o.Scale <= 0 {
			return w, h
		}
		nw, nh := int(float64(w)*o.Scale), int(float64(h)*o.Scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		return nw, nh
	case ResizeDimensions:
		if o.Width <= 0 || o.Height <= 0 {
			return w, h
		}
		return o.Width, o.Height
	default:
		return w, h
	}
}

// FileName returns the PNG file name for a trim name.
func FileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".png"
}

// Exporter writes trims to disk as PNG files.
type Exporter struct {
	logger *slog.Logger
}

func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes every trim into dir and returns the written paths.
// It stops at the first failure; files already written are kept.
func (e *Exporter) Export(dir string, trims []Trim, opts ResizeOptions) ([]string, error) {
	if len(trims) == 0 {
		return nil, ErrEmptyHistory
	}
	written := make([]string, 0, len(trims))
	for _, t := range trims {
		if t.Image == nil {
			return written, fmt.Errorf("trim %q has no image", t.Name)
		}
		var out image.Image = t.Image
		b := t.Image.Bounds()
		if w, h := opts.Size(b.Dx(), b.Dy()); w != b.Dx() || h != b.Dy() {
			out = imaging.Resize(t.Image, w, h, imaging.Lanczos)
		}
		path := filepath.Join(dir, FileName(t.Name))
		if err := imaging.Save(out, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
		if e != nil && e.logger != nil {
			e.logger.Debug("trim exported", "path", path, "width", out.Bounds().Dx(), "height", out.Bounds().Dy())
		}
	}
	return written, nil
}
