package presenter

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/pixel-trimmer-go/config"
	"github.com/soocke/pixel-trimmer-go/domain/selection"
	"github.com/soocke/pixel-trimmer-go/domain/trim"
	"github.com/soocke/pixel-trimmer-go/ui/images"
	"github.com/soocke/pixel-trimmer-go/ui/model"
)

type mockCanvasView struct {
	shown int
	last  image.Image
}

func (v *mockCanvasView) ShowImage(img image.Image) { v.shown++; v.last = img }

type mockDialogs struct {
	openPath, dir         string
	openCalls, dirCalls   int
	lastInitialOpen       string
	lastInitialDirRequest string
}

func (d *mockDialogs) OpenImage(initial string) string {
	d.openCalls++
	d.lastInitialOpen = initial
	return d.openPath
}

func (d *mockDialogs) ChooseDirectory(initial string) string {
	d.dirCalls++
	d.lastInitialDirRequest = initial
	return d.dir
}

type mockShellView struct {
	status    []string
	history   []string
	preview   image.Image
	refreshes int
}

func (v *mockShellView) SetStatus(text string)       { v.status = append(v.status, text) }
func (v *mockShellView) SetHistory(names []string)   { v.history = names }
func (v *mockShellView) ShowPreview(img image.Image) { v.preview = img }
func (v *mockShellView) RefreshTheme()               { v.refreshes++ }

type mockExporter struct {
	calls int
	dir   string
	trims []trim.Trim
	opts  trim.ResizeOptions
	err   error
}

func (e *mockExporter) Export(dir string, trims []trim.Trim, opts trim.ResizeOptions) ([]string, error) {
	e.calls++
	e.dir, e.trims, e.opts = dir, trims, opts
	if e.err != nil {
		return nil, e.err
	}
	out := make([]string, len(trims))
	for i, t := range trims {
		out[i] = dir + "/" + trim.FileName(t.Name)
	}
	return out, nil
}

func white(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

type fixture struct {
	logs     *bytes.Buffer
	canvasV  *mockCanvasView
	canvas   *CanvasPresenter
	dialogs  *mockDialogs
	view     *mockShellView
	exporter *mockExporter
	shell    *ShellPresenter
	loaded   image.Image
	loadErr  error
	exited   int
}

func newFixture() *fixture {
	f := &fixture{logs: &bytes.Buffer{}, canvasV: &mockCanvasView{}, dialogs: &mockDialogs{}, view: &mockShellView{}, exporter: &mockExporter{}}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	m := model.NewCanvasModel(selection.NewTracker(nil), 1000, 1000, images.DefaultOutline, images.DefaultOutline)
	f.canvas = NewCanvasPresenter(m, f.canvasV)
	f.loaded = white(400, 300)
	f.shell = NewShellPresenter(ShellDeps{
		Canvas:   f.canvas,
		History:  trim.NewHistory(nil),
		Exporter: f.exporter,
		Dialogs:  f.dialogs,
		View:     f.view,
		Load: func(path string) (image.Image, error) {
			if f.loadErr != nil {
				return nil, f.loadErr
			}
			return f.loaded, nil
		},
		Grab:   func() (image.Image, error) { return white(64, 48), nil },
		OnExit: func() { f.exited++ },
		Config: config.DefaultConfig(),
		Logger: logger,
	})
	return f
}

func (f *fixture) drag(x0, y0, x1, y1 int) {
	f.canvas.PointerDown(x0, y0)
	f.canvas.PointerMove(x1, y1)
	f.canvas.PointerUp(x1, y1)
}

func TestCanvasPresenter_RedrawsOnPointerEvents(t *testing.T) {
	f := newFixture()
	f.canvas.SetImage(white(100, 100))
	base := f.canvasV.shown
	f.canvas.PointerMove(5, 5) // idle, ignored
	if f.canvasV.shown != base {
		t.Fatalf("idle move should not redraw")
	}
	f.canvas.PointerDown(1, 1)
	f.canvas.PointerMove(20, 20)
	f.canvas.PointerMove(30, 30)
	f.canvas.PointerUp(30, 30)
	if got := f.canvasV.shown - base; got != 4 {
		t.Fatalf("expected 4 redraws (down, 2 moves, up), got %d", got)
	}
	f.canvas.Reset()
	if f.canvasV.last != f.canvas.Model().Display() {
		t.Fatalf("reset should redraw the plain image")
	}
}

func TestShell_TrimLogsSelection(t *testing.T) {
	f := newFixture()
	f.drag(10, 10, 110, 60)
	f.shell.Trim()
	if !strings.Contains(f.logs.String(), "x=10 y=10 w=100 h=50") {
		t.Fatalf("trim log missing, got: %s", f.logs.String())
	}
}

func TestShell_TrimIgnoresEmptySelection(t *testing.T) {
	f := newFixture()
	f.canvas.PointerDown(50, 50)
	f.canvas.PointerUp(50, 50)
	f.shell.Trim()
	if strings.Contains(f.logs.String(), "trim selection") {
		t.Fatalf("zero-area selection should not log: %s", f.logs.String())
	}
	f.drag(10, 10, 90, 10) // zero height
	f.shell.Trim()
	if strings.Contains(f.logs.String(), "trim selection") {
		t.Fatalf("zero-height selection should not log: %s", f.logs.String())
	}
}

func TestShell_TrimBackwardDragIsNormalized(t *testing.T) {
	f := newFixture()
	f.drag(110, 60, 10, 10)
	f.shell.Trim()
	if !strings.Contains(f.logs.String(), "x=10 y=10 w=100 h=50") {
		t.Fatalf("backward drag not normalized: %s", f.logs.String())
	}
}

func TestShell_TrimRecordsHistoryWhenImageLoaded(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	f.drag(10, 10, 110, 60)
	f.shell.Trim()
	if f.shell.History.Len() != 1 {
		t.Fatalf("expected one trim, got %d", f.shell.History.Len())
	}
	tr, _ := f.shell.History.Get(0)
	if tr.Rect != image.Rect(10, 10, 110, 60) {
		t.Fatalf("unexpected source rect %v", tr.Rect)
	}
	if tr.Image.Bounds().Dx() != 100 || tr.Image.Bounds().Dy() != 50 {
		t.Fatalf("unexpected crop size %v", tr.Image.Bounds())
	}
	if len(f.view.history) != 1 || f.view.history[0] != "Trim 1" {
		t.Fatalf("history view not updated: %v", f.view.history)
	}
	if f.view.preview == nil {
		t.Fatalf("expected preview after trim")
	}
}

func TestShell_TrimWithoutImageDoesNotRecord(t *testing.T) {
	f := newFixture()
	f.drag(0, 0, 10, 10)
	f.shell.Trim()
	if f.shell.History.Len() != 0 {
		t.Fatalf("trim without image should not be recorded")
	}
}

func TestShell_TrimOutsideImageIsRejected(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open() // 400x300 on a 1000x1000 canvas
	f.drag(500, 50, 600, 150)
	f.shell.Trim()
	if f.shell.History.Len() != 0 {
		t.Fatalf("selection beyond the image was recorded")
	}
	if last := f.view.status[len(f.view.status)-1]; last != "Selection is outside the image" {
		t.Fatalf("unexpected status %q", last)
	}

	f.drag(350, 250, 500, 400) // overlaps the bottom-right corner
	f.shell.Trim()
	tr, err := f.shell.History.Get(0)
	if err != nil {
		t.Fatalf("partially outside selection not recorded: %v", err)
	}
	if tr.Rect != image.Rect(350, 250, 400, 300) || tr.Image.Bounds().Dx() != 50 || tr.Image.Bounds().Dy() != 50 {
		t.Fatalf("expected clamped 50x50 crop, got rect %v bounds %v", tr.Rect, tr.Image.Bounds())
	}
}

func TestShell_OpenCancelledKeepsImage(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	before := f.canvas.Model().Source()
	f.dialogs.openPath = ""
	f.shell.Open()
	if f.canvas.Model().Source() != before {
		t.Fatalf("cancelled open replaced the image")
	}
	if f.dialogs.openCalls != 2 {
		t.Fatalf("expected 2 dialog calls, got %d", f.dialogs.openCalls)
	}
}

func TestShell_OpenDecodeErrorKeepsImage(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	before := f.canvas.Model().Source()
	f.loadErr = errors.New("corrupt")
	f.dialogs.openPath = "/pics/broken.jpg"
	f.shell.Open()
	if f.canvas.Model().Source() != before {
		t.Fatalf("failed open replaced the image")
	}
	if !strings.Contains(f.logs.String(), "image open failed") {
		t.Fatalf("expected error log, got %s", f.logs.String())
	}
}

func TestShell_OpenResetsHistoryAndRemembersDir(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	f.drag(0, 0, 20, 20)
	f.shell.Trim()
	f.shell.Open()
	if f.shell.History.Len() != 0 {
		t.Fatalf("open should reset history")
	}
	if f.shell.Config.LastOpenDir != "/pics" {
		t.Fatalf("last open dir not remembered: %q", f.shell.Config.LastOpenDir)
	}
	f.shell.Open()
	if f.dialogs.lastInitialOpen != "/pics" {
		t.Fatalf("dialog not seeded with last dir: %q", f.dialogs.lastInitialOpen)
	}
}

func TestShell_ClearAlwaysLogsAndResets(t *testing.T) {
	f := newFixture()
	f.shell.Clear()
	f.drag(1, 2, 30, 40)
	f.shell.Clear()
	if n := strings.Count(f.logs.String(), "clear selection"); n != 2 {
		t.Fatalf("expected 2 clear logs, got %d", n)
	}
	x, y, w, h := f.canvas.Model().Tracker.Selection()
	if x != 0 || y != 0 || w != 0 || h != 0 {
		t.Fatalf("clear did not reset selection: %d %d %d %d", x, y, w, h)
	}
}

func TestShell_SaveAllAlwaysLogs(t *testing.T) {
	f := newFixture()
	f.shell.SaveAll()
	if !strings.Contains(f.logs.String(), "msg=\"save all\"") {
		t.Fatalf("save all log missing: %s", f.logs.String())
	}
	if f.dialogs.dirCalls != 0 || f.exporter.calls != 0 {
		t.Fatalf("empty history should not prompt or export")
	}
}

func TestShell_SaveAllExportsAndConsumesHistory(t *testing.T) {
	f := newFixture()
	f.shell.Config.ResizeMode = "scale"
	f.shell.Config.ResizeScale = 0.5
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	f.drag(0, 0, 20, 20)
	f.shell.Trim()
	f.drag(30, 30, 60, 60)
	f.shell.Trim()
	f.dialogs.dir = "/out"
	f.shell.SaveAll()
	if f.exporter.calls != 1 || f.exporter.dir != "/out" || len(f.exporter.trims) != 2 {
		t.Fatalf("unexpected export call: calls=%d dir=%q trims=%d", f.exporter.calls, f.exporter.dir, len(f.exporter.trims))
	}
	if f.exporter.opts.Mode != trim.ResizeScale || f.exporter.opts.Scale != 0.5 {
		t.Fatalf("resize options not forwarded: %+v", f.exporter.opts)
	}
	if f.shell.History.Len() != 0 || len(f.view.history) != 0 {
		t.Fatalf("history should be consumed by save all")
	}
	if f.shell.Config.OutputDir != "/out" {
		t.Fatalf("output dir not remembered")
	}
}

func TestShell_SaveAllCancelledOrFailedKeepsHistory(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	f.drag(0, 0, 20, 20)
	f.shell.Trim()
	f.shell.SaveAll() // dialog cancelled
	if f.exporter.calls != 0 || f.shell.History.Len() != 1 {
		t.Fatalf("cancel should keep history and skip export")
	}
	f.dialogs.dir = "/out"
	f.exporter.err = errors.New("disk full")
	f.shell.SaveAll()
	if f.shell.History.Len() != 1 {
		t.Fatalf("failed export should keep history")
	}
}

func TestShell_HistoryEditing(t *testing.T) {
	f := newFixture()
	f.dialogs.openPath = "/pics/a.png"
	f.shell.Open()
	for i := 0; i < 3; i++ {
		f.drag(i*10, 0, i*10+5, 5)
		f.shell.Trim()
	}
	f.shell.SelectTrim(1)
	if f.view.preview == nil {
		t.Fatalf("expected preview for selected trim")
	}
	f.shell.DeleteTrim(0)
	if len(f.view.history) != 2 || f.view.history[0] != "Trim 2" {
		t.Fatalf("unexpected history after delete %v", f.view.history)
	}
	f.shell.DeleteTrim(9)
	if f.view.status[len(f.view.status)-1] != "Select a trim to delete" {
		t.Fatalf("expected out-of-range status, got %v", f.view.status)
	}
	f.shell.ClearHistory()
	if f.shell.History.Len() != 0 || f.view.preview != nil {
		t.Fatalf("clear history incomplete")
	}
}

func TestShell_CaptureScreenReplacesImage(t *testing.T) {
	f := newFixture()
	f.shell.CaptureScreen()
	if src := f.canvas.Model().Source(); src == nil || src.Bounds().Dx() != 64 {
		t.Fatalf("capture did not set image")
	}
}

func TestShell_ExitAndSettings(t *testing.T) {
	f := newFixture()
	f.shell.Exit()
	if f.exited != 1 {
		t.Fatalf("exit callback not invoked")
	}
	f.canvas.SetImage(white(50, 50))
	f.shell.Config.OutlineColor = "#0000ff"
	f.shell.SettingsChanged()
	f.canvas.PointerDown(10, 10)
	f.canvas.PointerMove(40, 40)
	r, _, b, _ := f.canvasV.last.At(10, 25).RGBA()
	if b>>8 < 200 || r>>8 > 100 {
		t.Fatalf("outline colour not applied: r=%d b=%d", r>>8, b>>8)
	}
}

func TestShell_ToggleDarkRefreshesViewAndSavesConfig(t *testing.T) {
	f := newFixture()
	dark := false
	f.shell.ToggleTheme = func() bool { dark = !dark; return dark }
	f.shell.CfgPath = filepath.Join(t.TempDir(), "cfg.json")
	f.shell.ToggleDark()
	if f.view.refreshes != 1 {
		t.Fatalf("expected one theme refresh, got %d", f.view.refreshes)
	}
	if !f.shell.Config.DarkMode {
		t.Fatalf("dark mode not recorded in config")
	}
	saved, err := config.Load(f.shell.CfgPath)
	if err != nil || !saved.DarkMode {
		t.Fatalf("dark mode not saved: cfg=%+v err=%v", saved, err)
	}
	f.shell.ToggleDark()
	if f.view.refreshes != 2 || f.shell.Config.DarkMode {
		t.Fatalf("second toggle: refreshes=%d dark=%v", f.view.refreshes, f.shell.Config.DarkMode)
	}
}
