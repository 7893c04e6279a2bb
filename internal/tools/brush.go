package tools

import "LocalPaint/internal/engine"

type sample struct {
	pos   engine.Point
	color engine.Color
}

// Brush stamps one square per pointer sample. Consecutive samples are not
// joined, so fast pointer motion leaves gaps.
type Brush struct {
	samples []sample
	size    float32
	color   engine.Color
}

func NewBrush(size float32, c engine.Color) *Brush {
	return &Brush{size: size, color: c}
}

func (b *Brush) Begin(p engine.Point) {
	b.samples = append(b.samples, sample{p, b.color})
}

func (b *Brush) Move(p engine.Point) []engine.Vertex {
	b.samples = append(b.samples, sample{p, b.color})
	return b.Geometry()
}

// End returns the stroke. The samples stay until Reset.
func (b *Brush) End(engine.Point) []engine.Vertex {
	return b.Geometry()
}

func (b *Brush) Geometry() []engine.Vertex {
	vs := make([]engine.Vertex, 0, 6*len(b.samples))
	for _, s := range b.samples {
		vs = engine.AppendSquare(vs, s.pos, b.size, s.color)
	}
	return vs
}

func (b *Brush) SetColor(c engine.Color) { b.color = c }
func (b *Brush) SetSize(size float32)    { b.size = size }
func (b *Brush) Reset()                  { b.samples = b.samples[:0] }
