package tools

import (
	"fmt"

	"LocalPaint/internal/engine"
)

// Active is the tool in the user's hand. It is a closed union over the four
// variants: kind selects which one of the variant fields is set.
type Active struct {
	kind      Kind
	brush     *Brush
	eraser    *Eraser
	line      *Line
	rectangle *Rectangle
}

var _ Tool = (*Active)(nil)

// New builds a fresh variant of the given kind. Variants that have no use for
// size or color ignore them.
func New(kind Kind, size float32, c engine.Color) *Active {
	a := &Active{kind: kind}
	switch kind {
	case KindBrush:
		a.brush = NewBrush(size, c)
	case KindEraser:
		a.eraser = NewEraser(size)
	case KindLine:
		a.line = NewLine(size, c)
	case KindRectangle:
		a.rectangle = NewRectangle(c)
	default:
		panic(fmt.Sprintf("tools: unknown kind %v", kind))
	}
	return a
}

func (a *Active) Kind() Kind { return a.kind }

// variant is the single place that resolves the union.
func (a *Active) variant() Tool {
	switch a.kind {
	case KindBrush:
		return a.brush
	case KindEraser:
		return a.eraser
	case KindLine:
		return a.line
	case KindRectangle:
		return a.rectangle
	}
	panic(fmt.Sprintf("tools: unknown kind %v", a.kind))
}

func (a *Active) Begin(p engine.Point)                { a.variant().Begin(p) }
func (a *Active) Move(p engine.Point) []engine.Vertex { return a.variant().Move(p) }
func (a *Active) End(p engine.Point) []engine.Vertex  { return a.variant().End(p) }
func (a *Active) Geometry() []engine.Vertex           { return a.variant().Geometry() }
func (a *Active) SetColor(c engine.Color)             { a.variant().SetColor(c) }
func (a *Active) SetSize(size float32)                { a.variant().SetSize(size) }
func (a *Active) Reset()                              { a.variant().Reset() }
