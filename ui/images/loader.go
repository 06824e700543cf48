package images

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF format decoder
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// ErrUnsupportedFormat is returned for files whose extension is not an image type we open.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the file extensions offered by the open dialog.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// Supported reports whether path has one of Extensions (case-insensitive).
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load decodes the image at path, applying EXIF orientation for JPEGs.
func Load(path string) (image.Image, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}
