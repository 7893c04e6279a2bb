package tools

import "LocalPaint/internal/engine"

// Line draws one thick segment from the stroke start to the latest pointer
// position. The geometry is rebuilt on every call.
type Line struct {
	start, end *engine.Point
	thickness  float32
	color      engine.Color
}

func NewLine(thickness float32, c engine.Color) *Line {
	return &Line{thickness: thickness, color: c}
}

func (l *Line) Begin(p engine.Point) {
	l.start, l.end = &p, &p
}

func (l *Line) Move(p engine.Point) []engine.Vertex {
	l.end = &p
	return l.Geometry()
}

func (l *Line) End(p engine.Point) []engine.Vertex {
	l.end = &p
	vs := l.Geometry()
	l.Reset()
	return vs
}

func (l *Line) Geometry() []engine.Vertex {
	if l.start == nil || l.end == nil {
		return nil
	}
	return segment(*l.start, *l.end, l.thickness, l.color)
}

func (l *Line) SetColor(c engine.Color) { l.color = c }
func (l *Line) SetSize(size float32)    { l.thickness = size }
func (l *Line) Reset()                  { l.start, l.end = nil, nil }

// segment returns the quad covering start→end, offset on both sides by
// thickness. A zero length segment has no direction and yields nothing.
func segment(start, end engine.Point, thickness float32, c engine.Color) []engine.Vertex {
	d := end.Sub(start)
	n := d.Len()
	if n == 0 {
		return nil
	}
	off := d.Scale(1 / n).Perp().Scale(thickness)

	v1, v2 := start.Add(off), start.Sub(off)
	v3, v4 := end.Add(off), end.Sub(off)
	return []engine.Vertex{
		engine.V(v1, c), engine.V(v2, c), engine.V(v3, c),
		engine.V(v2, c), engine.V(v4, c), engine.V(v3, c),
	}
}
