package tools

import "LocalPaint/internal/engine"

// Eraser paints the background color over what is underneath. It does not
// remove geometry.
type Eraser struct {
	points []engine.Point
	size   float32
}

func NewEraser(size float32) *Eraser {
	return &Eraser{size: size}
}

func (e *Eraser) Begin(p engine.Point) {
	e.points = append(e.points, p)
}

func (e *Eraser) Move(p engine.Point) []engine.Vertex {
	e.points = append(e.points, p)
	return e.Geometry()
}

func (e *Eraser) End(engine.Point) []engine.Vertex {
	return e.Geometry()
}

func (e *Eraser) Geometry() []engine.Vertex {
	vs := make([]engine.Vertex, 0, 6*len(e.points))
	for _, p := range e.points {
		vs = engine.AppendSquare(vs, p, e.size, engine.White)
	}
	return vs
}

// SetColor is a no-op: the eraser is always white.
func (e *Eraser) SetColor(engine.Color) {}
func (e *Eraser) SetSize(size float32)  { e.size = size }
func (e *Eraser) Reset()                { e.points = e.points[:0] }
