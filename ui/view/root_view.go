package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-trimmer-go/config"
	"github.com/soocke/pixel-trimmer-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the shell actions wired to menus, buttons and shortcuts.
type Handlers struct {
	Open          func()
	CaptureScreen func()
	Trim          func()
	SaveAll       func()
	Clear         func()
	Exit          func()
	ToggleDark    func()
	Settings      func()
	History       HistoryActions
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Canvas      CanvasView
	History     HistoryPanel
	Status      StatusBar
	ConfigPanel ConfigPanel
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the menubar and layout. pointer receives canvas drags.
func (rv *RootView) Build(h Handlers, pointer PointerHandler) {
	if rv == nil {
		return
	}
	rv.buildMenu(h)

	// Row 0: toolbar
	toolbar := Frame()
	Grid(toolbar, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	trimBtn := TButton(Txt("Trim"), Style(theme.StylePrimaryButton), Command(h.Trim))
	Grid(trimBtn, In(toolbar), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := TButton(Txt("Clear"), Style(theme.StyleDangerButton), Command(h.Clear))
	Grid(clearBtn, In(toolbar), Row(0), Column(1), Sticky("w"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: canvas and side panel
	w, hgt := 960, 720
	if rv.cfg != nil {
		w, hgt = rv.cfg.CanvasWidth, rv.cfg.CanvasHeight
	}
	rv.Canvas = NewCanvasView(w, hgt, theme.CurrentPalette().Canvas, pointer)
	Grid(rv.Canvas.Widget(), Row(1), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))

	side := Frame()
	Grid(side, Row(1), Column(1), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	rv.History = NewHistoryPanel(side, 0, h.History, rv.logger)
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.Settings)
	rv.ConfigPanel.Build(side, 4)

	// Row 2: status
	rv.Status = NewStatusBar(2)

	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	Bind(App, "<Control-o>", Command(h.Open))
	Bind(App, "<Control-t>", Command(h.Trim))
	Bind(App, "<Control-s>", Command(h.SaveAll))
	Bind(App, "<Escape>", Command(h.Clear))
}

func (rv *RootView) buildMenu(h Handlers) {
	menubar := Menu()
	fileMenu := menubar.Menu()
	fileMenu.AddCommand(Lbl("Open..."), Underline(0), Accelerator("Ctrl+O"), Command(h.Open))
	fileMenu.AddCommand(Lbl("Capture Screen"), Underline(0), Command(h.CaptureScreen))
	fileMenu.AddCommand(Lbl("Trim"), Underline(0), Accelerator("Ctrl+T"), Command(h.Trim))
	fileMenu.AddCommand(Lbl("Save All..."), Underline(0), Accelerator("Ctrl+S"), Command(h.SaveAll))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Exit"), Underline(1), Command(h.Exit))
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(fileMenu))

	settingsMenu := menubar.Menu()
	settingsMenu.AddCommand(Lbl("Toggle Dark Mode"), Underline(0), Command(h.ToggleDark))
	menubar.AddCascade(Lbl("Settings"), Underline(0), Mnu(settingsMenu))
	App.Configure(Mnu(menubar))
}

// --- ShellPresenter view contract methods ---

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetHistory proxies to the history panel.
func (rv *RootView) SetHistory(names []string) {
	if rv != nil && rv.History != nil {
		rv.History.SetHistory(names)
	}
}

// ShowPreview proxies to the history panel.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.History != nil {
		rv.History.ShowPreview(img)
	}
}

// ShowImage proxies to the canvas view.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowImage(img)
	}
}

// RefreshTheme re-applies palette colours that ttk styles do not cover.
func (rv *RootView) RefreshTheme() {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetBackground(theme.CurrentPalette().Canvas)
	}
}

// SetSelection shows the raw selection in the status bar.
func (rv *RootView) SetSelection(x, y, w, h int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSelection(x, y, w, h)
	}
}
