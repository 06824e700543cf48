package view

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soocke/pixel-trimmer-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the export/overlay settings form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ApplyChanges()                                        // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApplied runs after a
// successful apply.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	header := Label(Txt("Settings"), Anchor("w"))
	Grid(header, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	row++
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow(config.SettingResizeMode, "Resize (none/scale/dimensions)", c.ResizeMode)
	makeRow(config.SettingResizeScale, "Scale (e.g. 0.5 or 2)", fmt.Sprintf("%.2f", c.ResizeScale))
	makeRow(config.SettingResizeWidth, "Width Px", fmt.Sprintf("%d", c.ResizeWidth))
	makeRow(config.SettingResizeHeight, "Height Px", fmt.Sprintf("%d", c.ResizeHeight))
	makeRow(config.SettingOutlineColor, "Outline Color", c.OutlineColor)
	makeRow(config.SettingFrozenColor, "Released Color", c.FrozenColor)
	makeRow(config.SettingOutlineWidth, "Outline Width", fmt.Sprintf("%.1f", c.OutlineWidth))
	applyBtn := Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = strings.TrimSpace(v.text(w))
	}
	cfg := v.cfg.WithSettings(values)
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}
