package view

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/soocke/pixel-trimmer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const previewBox = 250

// HistoryActions are the user commands issued from the history panel.
type HistoryActions struct {
	Select func(i int)
	Delete func(i int)
	Clear  func()
}

// HistoryPanel lists recorded trims and previews the selected one.
type HistoryPanel interface {
	SetHistory(names []string)
	ShowPreview(img image.Image)
}

type historyPanel struct {
	logger    *slog.Logger
	combo     *TComboboxWidget
	preview   *LabelWidget
	prevPhoto *Img
	count     int
}

// NewHistoryPanel builds the panel inside parent starting at row.
func NewHistoryPanel(parent *FrameWidget, row int, actions HistoryActions, logger *slog.Logger) HistoryPanel {
	p := &historyPanel{logger: logger}
	title := Label(Txt("Trims"), Anchor("w"))
	Grid(title, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	p.combo = TCombobox(Values([]string{"<none>"}), Width(28))
	Grid(p.combo, In(parent), Row(row+1), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	p.combo.Current(0)
	Bind(p.combo, "<<ComboboxSelected>>", Command(func() {
		if idx, ok := p.selected(); ok && actions.Select != nil {
			actions.Select(idx)
		}
	}))
	deleteBtn := Button(Txt("Delete Selected"), Command(func() {
		idx, ok := p.selected()
		if !ok {
			idx = -1
		}
		if actions.Delete != nil {
			actions.Delete(idx)
		}
	}))
	Grid(deleteBtn, In(parent), Row(row+2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := Button(Txt("Clear All"), Command(func() {
		if actions.Clear != nil {
			actions.Clear()
		}
	}))
	Grid(clearBtn, In(parent), Row(row+2), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	blank := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 1, 1)))))
	p.preview = Label(Image(blank), Width(previewBox), Height(previewBox), Borderwidth(1), Relief("sunken"))
	p.prevPhoto = blank
	Grid(p.preview, In(parent), Row(row+3), Column(0), Columnspan(2), Padx("0.4m"), Pady("0.4m"))
	return p
}

func (p *historyPanel) selected() (int, bool) {
	if p.combo == nil || p.count == 0 {
		return 0, false
	}
	idx, err := strconv.Atoi(p.combo.Current(nil))
	if err != nil || idx < 0 || idx >= p.count {
		if p.logger != nil && err != nil {
			p.logger.Error("trim selection parse error", "error", err)
		}
		return 0, false
	}
	return idx, true
}

// SetHistory replaces the listed names and selects the newest entry.
func (p *historyPanel) SetHistory(names []string) {
	if p == nil || p.combo == nil {
		return
	}
	p.count = len(names)
	if len(names) == 0 {
		p.combo.Configure(Values([]string{"<none>"}))
		p.combo.Current(0)
		return
	}
	p.combo.Configure(Values(names))
	p.combo.Current(len(names) - 1)
}

// ShowPreview displays img; nil clears the preview.
func (p *historyPanel) ShowPreview(img image.Image) {
	if p == nil || p.preview == nil {
		return
	}
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	if p.prevPhoto != nil {
		p.prevPhoto.Delete()
	}
	p.prevPhoto = NewPhoto(Data(images.EncodePNG(images.Thumbnail(img, previewBox))))
	p.preview.Configure(Image(p.prevPhoto))
}
