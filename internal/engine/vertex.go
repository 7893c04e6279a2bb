// Package engine holds the vertex format shared by the drawing tools and the
// renderers, and a software renderer for it.
package engine

import (
	"image/color"
	"math"
)

// Point is a position in normalised device coordinates. Both axes run from
// -1 to 1 with +Y pointing up.
type Point struct{ X, Y float32 }

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float32) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Perp() Point           { return Point{-p.Y, p.X} }
func (p Point) Len() float32          { return float32(math.Hypot(float64(p.X), float64(p.Y))) }
func (p Point) array() [2]float32     { return [2]float32{p.X, p.Y} }
func (p Point) Eq(q Point) bool       { return p.X == q.X && p.Y == q.Y }

// Color is a straight (non-premultiplied) RGBA color with components in [0, 1].
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// NRGBA converts c to an 8-bit color, clamping out of range components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

// ColorOf converts any image/color value to a Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vertex is the unit the renderers consume. Every three consecutive vertices
// form one triangle.
type Vertex struct {
	Position [2]float32
	Color    Color
}

// V builds a vertex at p.
func V(p Point, c Color) Vertex { return Vertex{Position: p.array(), Color: c} }

// Pos returns the vertex position as a Point.
func (v Vertex) Pos() Point { return Point{v.Position[0], v.Position[1]} }

// AppendSquare appends the two triangles of an axis-aligned square centred on
// p with the given half extent.
func AppendSquare(dst []Vertex, p Point, half float32, c Color) []Vertex {
	tl := Pt(p.X-half, p.Y+half)
	tr := Pt(p.X+half, p.Y+half)
	bl := Pt(p.X-half, p.Y-half)
	br := Pt(p.X+half, p.Y-half)
	return append(dst,
		V(tl, c), V(bl, c), V(tr, c),
		V(bl, c), V(br, c), V(tr, c),
	)
}
