package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/pixel-trimmer-go/config"
	"github.com/soocke/pixel-trimmer-go/debug"
	"github.com/soocke/pixel-trimmer-go/ui/theme"
	"github.com/soocke/pixel-trimmer-go/ui/view"
)

type app struct {
	title     string
	config    *config.Config
	cfgPath   string
	logger    *slog.Logger
	container *AppContainer
	stopDebug func()
}

// NewApp prepares the main window. Widgets are built in Start.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{title: title, config: cfg, cfgPath: cfgPath, logger: logger}
	a.container = BuildContainer(cfg, logger, cfgPath, a.exitHandler)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Start builds the UI and runs the Tk event loop until the window closes.
func (a *app) Start() {
	theme.SetDark(a.config.DarkMode)
	shell := a.container.ShellPresenter
	a.container.RootView.Build(view.Handlers{
		Open:          shell.Open,
		CaptureScreen: shell.CaptureScreen,
		Trim:          shell.Trim,
		SaveAll:       shell.SaveAll,
		Clear:         shell.Clear,
		Exit:          shell.Exit,
		ToggleDark:    shell.ToggleDark,
		Settings:      shell.SettingsChanged,
		History: view.HistoryActions{
			Select: shell.SelectTrim,
			Delete: shell.DeleteTrim,
			Clear:  shell.ClearHistory,
		},
	}, a.container.CanvasPresenter)
	a.container.CanvasPresenter.Redraw()

	if a.config.Debug {
		a.stopDebug = debug.StartRuntimeLogger(5*time.Second, a.logger, a.imageProbe)
	}
	a.logger.Info("trimmer started", "canvas_w", a.config.CanvasWidth, "canvas_h", a.config.CanvasHeight)
	App.Wait()
}

// imageProbe reports the loaded image size for the debug logger. It runs on
// the logger goroutine, so it only reads the atomic counters.
func (a *app) imageProbe() []slog.Attr {
	return []slog.Attr{
		slog.Int64("image_pixels", a.container.Canvas.Pixels()),
		slog.Int64("trims", a.container.History.Count()),
	}
}

func (a *app) exitHandler() {
	if a.stopDebug != nil {
		a.stopDebug()
	}
	Destroy(App)
}
