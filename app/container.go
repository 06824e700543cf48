package app

import (
	"log/slog"

	"github.com/soocke/pixel-trimmer-go/capture"
	"github.com/soocke/pixel-trimmer-go/config"
	"github.com/soocke/pixel-trimmer-go/domain/selection"
	"github.com/soocke/pixel-trimmer-go/domain/trim"
	"github.com/soocke/pixel-trimmer-go/ui/images"
	"github.com/soocke/pixel-trimmer-go/ui/model"
	"github.com/soocke/pixel-trimmer-go/ui/presenter"
	"github.com/soocke/pixel-trimmer-go/ui/theme"
	"github.com/soocke/pixel-trimmer-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger
	Tracker  *selection.Tracker
	Canvas   *model.CanvasModel
	History  *trim.History
	Exporter *trim.Exporter
	RootView *view.RootView

	// Presenters
	CanvasPresenter *presenter.CanvasPresenter
	ShellPresenter  *presenter.ShellPresenter
}

// BuildContainer constructs all components. No widgets are created here;
// RootView.Build runs once the Tk window exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, onExit func()) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Tracker = selection.NewTracker(logger)
	c.Canvas = model.NewCanvasModel(c.Tracker, cfg.CanvasWidth, cfg.CanvasHeight,
		images.OutlineStyle{Color: cfg.Outline(), Width: cfg.OutlineWidth},
		images.OutlineStyle{Color: cfg.Frozen(), Width: cfg.OutlineWidth},
	)
	c.History = trim.NewHistory(images.Thumbnail)
	c.Exporter = trim.NewExporter(logger)
	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	// Presenters talk to the root view proxies, which are no-ops until Build.
	c.CanvasPresenter = presenter.NewCanvasPresenter(c.Canvas, c.RootView)
	c.ShellPresenter = presenter.NewShellPresenter(presenter.ShellDeps{
		Canvas:   c.CanvasPresenter,
		History:  c.History,
		Exporter: c.Exporter,
		Dialogs:  view.Dialogs{},
		View:     c.RootView,
		Load:     images.Load,
		Grab:     capture.Grab,
		OnExit:   onExit,
		Config:   cfg,
		CfgPath:  cfgPath,
		Logger:   logger,

		ToggleTheme: theme.ToggleDark,
	})
	c.Tracker.AddListener(func(prev, next selection.State) {
		c.RootView.SetSelection(c.Tracker.Selection())
	})
	return c
}
