package tools

import "LocalPaint/internal/engine"

// Rectangle fills the axis-aligned box spanned by the stroke start and the
// latest pointer position. It has no size.
type Rectangle struct {
	start, end *engine.Point
	color      engine.Color
}

func NewRectangle(c engine.Color) *Rectangle {
	return &Rectangle{color: c}
}

func (r *Rectangle) Begin(p engine.Point) {
	r.start, r.end = &p, &p
}

func (r *Rectangle) Move(p engine.Point) []engine.Vertex {
	r.end = &p
	return r.Geometry()
}

func (r *Rectangle) End(p engine.Point) []engine.Vertex {
	r.end = &p
	vs := r.Geometry()
	r.Reset()
	return vs
}

func (r *Rectangle) Geometry() []engine.Vertex {
	if r.start == nil || r.end == nil {
		return nil
	}
	lo := engine.Pt(min(r.start.X, r.end.X), min(r.start.Y, r.end.Y))
	hi := engine.Pt(max(r.start.X, r.end.X), max(r.start.Y, r.end.Y))
	c := r.color
	return []engine.Vertex{
		engine.V(lo, c), engine.V(engine.Pt(hi.X, lo.Y), c), engine.V(hi, c),
		engine.V(lo, c), engine.V(hi, c), engine.V(engine.Pt(lo.X, hi.Y), c),
	}
}

func (r *Rectangle) SetColor(c engine.Color) { r.color = c }

// SetSize is a no-op.
func (r *Rectangle) SetSize(float32) {}
func (r *Rectangle) Reset()          { r.start, r.end = nil, nil }
