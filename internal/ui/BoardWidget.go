package ui

import (
	"fmt"
	"image"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
)

// BoardWidget shows a state.Canvas and feeds it pointer input. Fyne draws
// from its own goroutine, so every access to the canvas goes through mu.
type BoardWidget struct {
	widget.BaseWidget
	mu        sync.Mutex
	canvas    *state.Canvas
	raster    *canvas.Raster
	frame     *image.RGBA
	drawn     uint64
	lastPos   fyne.Position
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(c *state.Canvas) *BoardWidget {
	b := &BoardWidget{
		canvas:    c,
		statusBar: widget.NewLabel("Ready"),
	}
	b.raster = canvas.NewRaster(b.draw)
	b.ExtendBaseWidget(b)
	b.updateStatus()
	return b
}

// Do runs f with exclusive access to the canvas, then redraws.
func (b *BoardWidget) Do(f func(c *state.Canvas)) {
	b.mu.Lock()
	f(b.canvas)
	b.mu.Unlock()
	b.updateStatus()
	b.Refresh()
}

// View runs f with exclusive access to the canvas without redrawing.
func (b *BoardWidget) View(f func(c *state.Canvas)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f(b.canvas)
}

// toNDC maps a widget-local position to normalised device coordinates,
// flipping Y so that up is positive.
func (b *BoardWidget) toNDC(pos fyne.Position) engine.Point {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return engine.Point{}
	}
	return engine.Pt(pos.X/size.Width*2-1, -(pos.Y/size.Height*2 - 1))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastPos = e.Position
	p := b.toNDC(e.Position)
	b.Do(func(c *state.Canvas) { c.PointerDown(p) })
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.toNDC(e.Position)
	b.Do(func(c *state.Canvas) { c.PointerUp(p) })
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.lastPos = e.Position
	p := b.toNDC(e.Position)
	b.Do(func(c *state.Canvas) { c.PointerMove(p) })
}

// DragEnd closes the stroke when the button was released outside the board
// and no MouseUp reached us.
func (b *BoardWidget) DragEnd() {
	p := b.toNDC(b.lastPos)
	b.Do(func(c *state.Canvas) { c.PointerUp(p) })
}

// draw is the raster generator. It only re-rasterizes when the canvas
// revision or the pixel size changed.
func (b *BoardWidget) draw(w, h int) image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	rev := b.canvas.Revision()
	if b.frame != nil && b.drawn == rev && b.frame.Bounds().Size() == image.Pt(w, h) {
		return b.frame
	}
	b.frame = engine.NewFrame(w, h, b.canvas.Vertices())
	b.drawn = rev
	return b.frame
}

// Export writes the current frame to w, choosing the format from name.
func (b *BoardWidget) Export(w io.Writer, name string) error {
	b.mu.Lock()
	vs := b.canvas.Vertices()
	size := image.Pt(int(b.Size().Width), int(b.Size().Height))
	if b.frame != nil {
		size = b.frame.Bounds().Size()
	}
	b.mu.Unlock()
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(800, 600)
	}
	return export.Write(w, name, vs, size.X, size.Y)
}

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() { b.statusBar.SetText(text) })
}

func (b *BoardWidget) updateStatus() {
	b.mu.Lock()
	c := b.canvas
	text := fmt.Sprintf("%s · size %.3f · %d triangles · %d undo steps",
		c.Tool(), c.BrushSize(), c.Committed()/3, c.HistoryLen())
	b.mu.Unlock()
	b.statusBar.SetText(text)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Refresh()              { canvas.Refresh(r.board.raster) }
func (r *boardWidgetRenderer) Layout(size fyne.Size) { r.board.raster.Resize(size) }
func (r *boardWidgetRenderer) MinSize() fyne.Size    { return fyne.NewSize(300, 300) }
func (r *boardWidgetRenderer) Destroy()              {}
