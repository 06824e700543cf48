package presenter

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/soocke/pixel-trimmer-go/config"
	"github.com/soocke/pixel-trimmer-go/domain/trim"
	"github.com/soocke/pixel-trimmer-go/ui/images"
)

// Dialogs abstracts the native file pickers. Both return "" on cancel.
type Dialogs interface {
	OpenImage(initialDir string) string
	ChooseDirectory(initialDir string) string
}

// ShellView is the part of the window the shell presenter updates.
type ShellView interface {
	SetStatus(text string)
	SetHistory(names []string)
	ShowPreview(img image.Image)
	RefreshTheme()
}

// Exporter writes trims to a directory.
type Exporter interface {
	Export(dir string, trims []trim.Trim, opts trim.ResizeOptions) ([]string, error)
}

// ShellDeps groups the collaborators of ShellPresenter.
type ShellDeps struct {
	Canvas   *CanvasPresenter
	History  *trim.History
	Exporter Exporter
	Dialogs  Dialogs
	View     ShellView
	Load     func(path string) (image.Image, error)
	Grab     func() (image.Image, error)
	OnExit   func()
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger

	// ToggleTheme flips light/dark styling and returns the new mode.
	ToggleTheme func() bool
}

// ShellPresenter implements the menu and button actions of the main window.
type ShellPresenter struct {
	ShellDeps
}

func NewShellPresenter(deps ShellDeps) *ShellPresenter {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.History == nil {
		deps.History = trim.NewHistory(images.Thumbnail)
	}
	if deps.Load == nil {
		deps.Load = images.Load
	}
	return &ShellPresenter{ShellDeps: deps}
}

// Open asks for an image file and shows it. A cancelled dialog or a file that
// fails to decode leaves the current image in place.
func (p *ShellPresenter) Open() {
	if p == nil || p.Dialogs == nil {
		return
	}
	initial := ""
	if p.Config != nil {
		initial = p.Config.LastOpenDir
	}
	path := p.Dialogs.OpenImage(initial)
	if path == "" {
		return
	}
	img, err := p.Load(path)
	if err != nil {
		p.Logger.Error("image open failed", "path", path, "error", err)
		p.status(fmt.Sprintf("Open failed: %s", filepath.Base(path)))
		return
	}
	p.replaceImage(img)
	p.Logger.Info("image opened", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	p.status(fmt.Sprintf("Opened %s (%dx%d)", filepath.Base(path), img.Bounds().Dx(), img.Bounds().Dy()))
	if p.Config != nil {
		p.Config.LastOpenDir = filepath.Dir(path)
		p.saveConfig()
	}
}

// CaptureScreen grabs the screen and uses it as the current image.
func (p *ShellPresenter) CaptureScreen() {
	if p == nil || p.Grab == nil {
		return
	}
	img, err := p.Grab()
	if err != nil || img == nil {
		p.Logger.Error("screen capture failed", "error", err)
		p.status("Screen capture failed")
		return
	}
	p.replaceImage(img)
	p.Logger.Info("screen captured", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	p.status(fmt.Sprintf("Captured screen (%dx%d)", img.Bounds().Dx(), img.Bounds().Dy()))
}

func (p *ShellPresenter) replaceImage(img image.Image) {
	p.Canvas.SetImage(img)
	p.History.Clear()
	p.refreshHistory()
	p.showPreview(nil)
}

// Trim reports the current selection when it has a positive area and, with an
// image loaded, records the cropped region in the history.
func (p *ShellPresenter) Trim() {
	if p == nil || p.Canvas == nil || p.Canvas.Model() == nil {
		return
	}
	m := p.Canvas.Model()
	r := m.SelectionRect()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	p.Logger.Info("trim selection", "x", r.Min.X, "y", r.Min.Y, "w", r.Dx(), "h", r.Dy())
	if !m.HasImage() {
		p.Logger.Warn("trim skipped: no image loaded")
		p.status("No image loaded")
		return
	}
	cropped, src, err := images.Crop(m.Source(), m.SourceRect())
	if err != nil {
		p.Logger.Warn("trim skipped", "error", err)
		p.status("Selection is outside the image")
		return
	}
	t := p.History.Add(src, cropped)
	p.refreshHistory()
	p.showPreview(t.Preview)
	p.Logger.Debug("trim recorded", "name", t.Name, "rect", src.String())
	p.status(fmt.Sprintf("%s: %dx%d at (%d,%d)", t.Name, src.Dx(), src.Dy(), src.Min.X, src.Min.Y))
}

// SaveAll exports every recorded trim into a chosen directory and empties
// the history on success.
func (p *ShellPresenter) SaveAll() {
	if p == nil {
		return
	}
	p.Logger.Info("save all")
	if p.History.Len() == 0 {
		p.Logger.Warn("save all skipped", "error", trim.ErrEmptyHistory)
		p.status("Nothing to save")
		return
	}
	if p.Dialogs == nil || p.Exporter == nil {
		return
	}
	initial := ""
	if p.Config != nil {
		initial = p.Config.OutputDir
	}
	dir := p.Dialogs.ChooseDirectory(initial)
	if dir == "" {
		return
	}
	written, err := p.Exporter.Export(dir, p.History.Items(), p.resizeOptions())
	if err != nil {
		p.Logger.Error("save all failed", "dir", dir, "written", len(written), "error", err)
		p.status(fmt.Sprintf("Save failed after %d file(s)", len(written)))
		return
	}
	p.Logger.Info("trims saved", "dir", dir, "count", len(written))
	p.status(fmt.Sprintf("Saved %d image(s) to %s", len(written), dir))
	p.History.Clear()
	p.refreshHistory()
	p.showPreview(nil)
	if p.Config != nil {
		p.Config.OutputDir = dir
		p.saveConfig()
	}
}

// Clear discards the canvas selection.
func (p *ShellPresenter) Clear() {
	if p == nil {
		return
	}
	p.Logger.Info("clear selection")
	p.Canvas.Reset()
}

// Exit closes the application.
func (p *ShellPresenter) Exit() {
	if p == nil || p.OnExit == nil {
		return
	}
	p.Logger.Info("exit")
	p.OnExit()
}

// SelectTrim shows the preview of trim i.
func (p *ShellPresenter) SelectTrim(i int) {
	if p == nil {
		return
	}
	t, err := p.History.Get(i)
	if err != nil {
		p.showPreview(nil)
		return
	}
	p.showPreview(t.Preview)
}

// DeleteTrim removes trim i from the history.
func (p *ShellPresenter) DeleteTrim(i int) {
	if p == nil {
		return
	}
	if err := p.History.Remove(i); err != nil {
		if errors.Is(err, trim.ErrIndexOutOfRange) {
			p.status("Select a trim to delete")
		}
		p.Logger.Warn("delete trim failed", "index", i, "error", err)
		return
	}
	p.refreshHistory()
	p.showPreview(nil)
}

// ClearHistory removes every trim.
func (p *ShellPresenter) ClearHistory() {
	if p == nil {
		return
	}
	n := p.History.Len()
	p.History.Clear()
	p.refreshHistory()
	p.showPreview(nil)
	p.Logger.Info("trim history cleared", "removed", n)
}

// SettingsChanged re-applies overlay colours after the config was edited.
func (p *ShellPresenter) SettingsChanged() {
	if p == nil || p.Config == nil || p.Canvas == nil || p.Canvas.Model() == nil {
		return
	}
	p.Canvas.Model().SetStyles(
		images.OutlineStyle{Color: p.Config.Outline(), Width: p.Config.OutlineWidth},
		images.OutlineStyle{Color: p.Config.Frozen(), Width: p.Config.OutlineWidth},
	)
	p.Canvas.Redraw()
}

// ToggleDark switches the colour scheme and remembers it in the config.
func (p *ShellPresenter) ToggleDark() {
	if p == nil || p.ToggleTheme == nil {
		return
	}
	dark := p.ToggleTheme()
	if p.View != nil {
		p.View.RefreshTheme()
	}
	p.Logger.Info("theme changed", "dark", dark)
	if p.Config != nil {
		p.Config.DarkMode = dark
		p.saveConfig()
	}
}

func (p *ShellPresenter) resizeOptions() trim.ResizeOptions {
	if p.Config == nil {
		return trim.ResizeOptions{Mode: trim.ResizeNone}
	}
	return trim.ResizeOptions{
		Mode:   trim.ResizeMode(p.Config.ResizeMode),
		Scale:  p.Config.ResizeScale,
		Width:  p.Config.ResizeWidth,
		Height: p.Config.ResizeHeight,
	}
}

func (p *ShellPresenter) saveConfig() {
	if p.CfgPath == "" {
		return
	}
	if err := p.Config.Save(p.CfgPath); err != nil {
		p.Logger.Error("config save failed", "error", err)
	}
}

func (p *ShellPresenter) refreshHistory() {
	if p.View != nil {
		p.View.SetHistory(p.History.Names())
	}
}

func (p *ShellPresenter) showPreview(img image.Image) {
	if p.View != nil {
		p.View.ShowPreview(img)
	}
}

func (p *ShellPresenter) status(text string) {
	if p.View != nil {
		p.View.SetStatus(text)
	}
}
