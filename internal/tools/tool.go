// Package tools turns a stream of pointer positions into triangles.
//
// Every tool answers Move and End with the complete geometry of the stroke so
// far, never a delta, so the caller can replace its preview wholesale.
package tools

import (
	"fmt"
	"strings"

	"LocalPaint/internal/engine"
)

// Tool is the capability shared by all drawing tools.
type Tool interface {
	// Begin records the start of a stroke.
	Begin(p engine.Point)
	// Move extends the stroke and returns its whole geometry.
	Move(p engine.Point) []engine.Vertex
	// End finishes the stroke and returns its final geometry.
	End(p engine.Point) []engine.Vertex
	// Geometry returns the current geometry without changing state.
	Geometry() []engine.Vertex
	SetColor(c engine.Color)
	SetSize(size float32)
	// Reset drops all stroke state.
	Reset()
}

// Kind names a tool variant.
type Kind int

const (
	KindBrush Kind = iota
	KindEraser
	KindLine
	KindRectangle
)

// Kinds lists every variant in display order.
var Kinds = []Kind{KindBrush, KindEraser, KindLine, KindRectangle}

func (k Kind) String() string {
	switch k {
	case KindBrush:
		return "Brush"
	case KindEraser:
		return "Eraser"
	case KindLine:
		return "Line"
	case KindRectangle:
		return "Rectangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String and ignores case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}
