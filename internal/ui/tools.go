package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
	"LocalPaint/internal/tools"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar is the side panel: tool choice, size, colors and canvas actions.
type Toolbar struct {
	board   *BoardWidget
	window  fyne.Window
	radio   *widget.RadioGroup
	slider  *widget.Slider
	current *canvas.Rectangle
	content fyne.CanvasObject
}

func NewToolbar(board *BoardWidget, cfg config.Config, w fyne.Window) *Toolbar {
	t := &Toolbar{board: board, window: w}

	var kind tools.Kind
	var col engine.Color
	var size float32
	board.View(func(c *state.Canvas) {
		kind, col, size = c.Tool(), c.Color(), c.BrushSize()
	})

	names := make([]string, len(tools.Kinds))
	for i, k := range tools.Kinds {
		names[i] = k.String()
	}
	t.radio = widget.NewRadioGroup(names, nil)
	t.radio.Required = true
	t.radio.SetSelected(kind.String())
	t.radio.OnChanged = func(s string) {
		k, err := tools.ParseKind(s)
		if err != nil {
			return
		}
		board.Do(func(c *state.Canvas) { c.ChangeTool(k) })
	}

	t.slider = widget.NewSlider(float64(cfg.MinBrushSize), float64(cfg.MaxBrushSize))
	t.slider.Step = float64(cfg.MinBrushSize)
	t.slider.SetValue(float64(size))
	t.slider.OnChanged = func(v float64) {
		board.Do(func(c *state.Canvas) { c.SetBrushSize(float32(v)) })
	}

	t.current = canvas.NewRectangle(col.NRGBA())
	t.current.SetMinSize(fyne.NewSize(48, 24))

	onColorTapped := func(c color.Color) { t.SetColor(engine.ColorOf(c)) }
	swatches := container.NewGridWithColumns(4)
	for _, c := range cfg.PaletteColors() {
		swatches.Add(newColorSwatch(c.NRGBA(), onColorTapped))
	}

	pickBtn := widget.NewButtonWithIcon("Pick…", theme.ColorPaletteIcon(), t.pickColor)
	undoBtn := widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() {
		board.Do(func(c *state.Canvas) { c.Undo() })
	})
	clearBtn := widget.NewButtonWithIcon("Clear Canvas", theme.DeleteIcon(), func() {
		board.Do(func(c *state.Canvas) { c.Clear() })
	})
	exportBtn := widget.NewButtonWithIcon("Export…", theme.DocumentSaveIcon(), t.exportFrame)

	t.content = container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		t.radio,
		widget.NewSeparator(),
		widget.NewLabel("Brush Size"),
		t.slider,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Colors", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(t.current, pickBtn),
		swatches,
		widget.NewSeparator(),
		undoBtn,
		clearBtn,
		exportBtn,
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.content }

// SetColor applies c to the canvas and the color preview.
func (t *Toolbar) SetColor(c engine.Color) {
	t.board.Do(func(cv *state.Canvas) { cv.SetColor(c) })
	t.current.FillColor = c.NRGBA()
	t.current.Refresh()
}

func (t *Toolbar) pickColor() {
	picker := dialog.NewColorPicker("Color", "Brush color", func(c color.Color) {
		t.SetColor(engine.ColorOf(c))
	}, t.window)
	picker.Advanced = true
	picker.Show()
}

func (t *Toolbar) exportFrame() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer func() {
			if err := wc.Close(); err != nil {
				log.Printf("[UI] Error closing export: %v", err)
			}
		}()
		if err := t.board.Export(wc, wc.URI().Name()); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			dialog.ShowError(err, t.window)
			return
		}
		t.board.SetStatus("Exported " + wc.URI().Name())
	}, t.window)
	d.SetFileName("drawing.png")
	d.Show()
}
