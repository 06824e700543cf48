package view

import (
	"fmt"

	"github.com/soocke/pixel-trimmer-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the last action result and the live selection.
type StatusBar interface {
	SetStatus(text string)
	SetSelection(x, y, w, h int)
}

type statusBar struct {
	statusLbl    *TLabelWidget
	selectionLbl *TLabelWidget
}

// NewStatusBar creates the status and selection labels at (row, 0) and (row, 1).
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		statusLbl:    TLabel(Style(theme.StyleStatusLabel), Anchor("w")),
		selectionLbl: TLabel(Style(theme.StyleStatusLabel), Anchor("e"), Width(36)),
	}
	Grid(s.statusLbl, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	Grid(s.selectionLbl, Row(row), Column(1), Sticky("e"), Padx("0.4m"), Pady("0.2m"))
	s.statusLbl.Configure(Txt("Open an image to start"))
	s.SetSelection(0, 0, 0, 0)
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

// SetSelection shows the raw selection values.
func (s *statusBar) SetSelection(x, y, w, h int) {
	if s == nil || s.selectionLbl == nil {
		return
	}
	s.selectionLbl.Configure(Txt(fmt.Sprintf("Selection: x=%d y=%d w=%d h=%d", x, y, w, h)))
}
