package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"LocalPaint/internal/config"
	"LocalPaint/internal/state"
)

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	board := NewBoardWidget(state.NewCanvas(cfg.CanvasOptions()...))
	toolbar := NewToolbar(board, cfg, myWindow)
	bindKeys(myApp, myWindow, board, toolbar, cfg)

	content := container.NewBorder(nil, board.statusBar, toolbar.Object(), nil, board)
	myWindow.SetContent(content)
	log.Printf("[UI] Window %q %.0fx%.0f", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	myWindow.ShowAndRun()
}

// bindKeys wires the keyboard: digits pick palette colors, Ctrl/Cmd+Z undoes
// and Escape quits.
func bindKeys(a fyne.App, w fyne.Window, board *BoardWidget, tb *Toolbar, cfg config.Config) {
	palette := cfg.PaletteColors()
	fc := w.Canvas()
	fc.SetOnTypedRune(func(r rune) {
		if r < '1' || r > '9' {
			return
		}
		if i := int(r - '1'); i < len(palette) {
			tb.SetColor(palette[i])
		}
	})
	fc.SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyEscape {
			a.Quit()
		}
	})
	fc.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) {
			board.Do(func(c *state.Canvas) { c.Undo() })
		})
}
