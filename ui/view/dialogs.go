package view

import (
	"strings"

	"github.com/soocke/pixel-trimmer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs wraps the native Tk file pickers.
type Dialogs struct{}

// OpenImage shows the open-file dialog filtered to supported image types.
func (Dialogs) OpenImage(initialDir string) string {
	opts := []Opt{
		Title("Open Image"),
		Filetypes([]FileType{
			{TypeName: "Image files", Extensions: images.Extensions},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	}
	if initialDir != "" {
		opts = append(opts, Initialdir(initialDir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 {
		return ""
	}
	return strings.TrimSpace(files[0])
}

// ChooseDirectory asks for an existing output directory.
func (Dialogs) ChooseDirectory(initialDir string) string {
	opts := []Opt{Title("Choose Output Directory"), Mustexist(true)}
	if initialDir != "" {
		opts = append(opts, Initialdir(initialDir))
	}
	return strings.TrimSpace(ChooseDirectory(opts...))
}
