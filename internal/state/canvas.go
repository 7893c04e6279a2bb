// Package state holds the drawing surface: committed geometry, the stroke in
// progress, the style applied to new strokes and a bounded undo history.
//
// A Canvas is not safe for concurrent use. The UI layer serialises access.
package state

import (
	"log"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/tools"
)

const (
	DefaultHistoryDepth         = 20
	DefaultBrushSize    float32 = 0.01
)

var DefaultColor = engine.Black

// Canvas is the stroke state machine. It is Idle until PointerDown and
// Drawing until the matching PointerUp.
type Canvas struct {
	tool       *tools.Active
	persistent []engine.Vertex
	current    []engine.Vertex
	color      engine.Color
	size       float32
	drawing    bool
	last       engine.Point
	strokeID   string
	history    *History
	clock      clock
}

type options struct {
	depth int
	kind  tools.Kind
	color engine.Color
	size  float32
}

// Option configures a new Canvas.
type Option func(*options)

// WithHistoryDepth sets how many undo steps are kept.
func WithHistoryDepth(n int) Option { return func(o *options) { o.depth = n } }

// WithTool selects the initial tool.
func WithTool(k tools.Kind) Option { return func(o *options) { o.kind = k } }

func WithColor(c engine.Color) Option   { return func(o *options) { o.color = c } }
func WithBrushSize(size float32) Option { return func(o *options) { o.size = size } }

// NewCanvas returns an empty, idle canvas. Without options it starts with a
// black brush of size 0.01 and twenty undo steps.
func NewCanvas(opts ...Option) *Canvas {
	o := options{
		depth: DefaultHistoryDepth,
		kind:  tools.KindBrush,
		color: DefaultColor,
		size:  DefaultBrushSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	log.Printf("[CANVAS] New canvas for session %s (%s, history %d)", SessionID, o.kind, o.depth)
	return &Canvas{
		tool:    tools.New(o.kind, o.size, o.color),
		color:   o.color,
		size:    o.size,
		history: NewHistory(o.depth),
	}
}

// ChangeTool replaces the active tool with a fresh one of kind k carrying the
// current color and size. Selecting the active kind does nothing. A stroke in
// progress is committed at the last pointer position before the switch.
func (c *Canvas) ChangeTool(k tools.Kind) {
	if k == c.tool.Kind() {
		return
	}
	if c.drawing {
		log.Printf("[CANVAS] Finishing %s stroke before switching to %s", c.tool.Kind(), k)
		c.PointerUp(c.last)
	}
	c.tool = tools.New(k, c.size, c.color)
	log.Printf("[CANVAS] Tool changed to %s", k)
}

// SetColor sets the color for new geometry and forwards it to the active tool.
func (c *Canvas) SetColor(col engine.Color) {
	c.color = col
	c.tool.SetColor(col)
}

// SetBrushSize sets the size for new geometry and forwards it to the active
// tool. Values are not validated.
func (c *Canvas) SetBrushSize(size float32) {
	c.size = size
	c.tool.SetSize(size)
}

// PointerDown starts a stroke at p. If a stroke is already open (a release
// was missed) it is committed first.
func (c *Canvas) PointerDown(p engine.Point) {
	if c.drawing {
		c.PointerUp(c.last)
	}
	c.drawing = true
	c.last = p
	c.strokeID = newStrokeID()
	c.tool.Begin(p)
	c.current = c.tool.Geometry()
	c.clock.tick()
}

// PointerMove extends the open stroke. It is ignored while idle.
func (c *Canvas) PointerMove(p engine.Point) {
	if !c.drawing {
		return
	}
	c.last = p
	c.current = c.tool.Move(p)
	c.clock.tick()
}

// PointerUp finishes the open stroke and commits its geometry. The snapshot
// taken for undo is the committed geometry as it was before this stroke. It
// is ignored while idle.
func (c *Canvas) PointerUp(p engine.Point) {
	if !c.drawing {
		return
	}
	vs := c.tool.End(p)
	c.tool.Reset()
	c.save()
	c.persistent = append(c.persistent, vs...)
	c.current = nil
	c.drawing = false
	c.clock.tick()
	log.Printf("[CANVAS] Stroke %s committed: %s, %d vertices", c.strokeID, c.tool.Kind(), len(vs))
	c.strokeID = ""
}

// Clear empties the drawing. The previous drawing is kept in history, so a
// following Undo brings it back. Clear does not end an open stroke.
func (c *Canvas) Clear() {
	c.save()
	c.persistent = nil
	c.current = nil
	c.clock.tick()
	log.Printf("[CANVAS] Cleared")
}

// Undo restores the most recent snapshot. It does nothing when history is
// empty and never touches the stroke in progress.
func (c *Canvas) Undo() {
	s, ok := c.history.Pop()
	if !ok {
		return
	}
	c.persistent = s
	c.clock.tick()
	log.Printf("[CANVAS] Undo: %d steps left", c.history.Len())
}

func (c *Canvas) save() {
	if c.history.Push(c.persistent) {
		log.Printf("[CANVAS] History full, oldest snapshot dropped")
	}
}

// Vertices returns the committed geometry followed by the stroke in progress.
// The result is a copy.
func (c *Canvas) Vertices() []engine.Vertex {
	out := make([]engine.Vertex, 0, len(c.persistent)+len(c.current))
	out = append(out, c.persistent...)
	return append(out, c.current...)
}

func (c *Canvas) Tool() tools.Kind    { return c.tool.Kind() }
func (c *Canvas) Color() engine.Color { return c.color }
func (c *Canvas) BrushSize() float32  { return c.size }
func (c *Canvas) IsDrawing() bool     { return c.drawing }
func (c *Canvas) HistoryLen() int     { return c.history.Len() }
func (c *Canvas) Revision() uint64    { return c.clock.rev }
func (c *Canvas) Committed() int      { return len(c.persistent) }
