package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/engine"
)

var red = engine.Color{1, 0, 0, 1}

func TestBrushQuadPerSample(t *testing.T) {
	b := NewBrush(0.01, red)
	b.Begin(engine.Pt(0, 0))
	vs := b.End(engine.Pt(0, 0))
	require.Len(t, vs, 6)

	for _, v := range vs {
		assert.Equal(t, red, v.Color)
		assert.InDelta(t, 0.01, abs(v.Position[0]), 1e-6)
		assert.InDelta(t, 0.01, abs(v.Position[1]), 1e-6)
	}

	b.Begin(engine.Pt(0.5, 0.5))
	assert.Len(t, b.Move(engine.Pt(0.6, 0.5)), 18, "samples are kept until Reset")
	b.Reset()
	assert.Empty(t, b.Geometry())
}

func TestBrushCapturesColorPerSample(t *testing.T) {
	blue := engine.Color{0, 0, 1, 1}
	b := NewBrush(0.1, red)
	b.Begin(engine.Pt(0, 0))
	b.SetColor(blue)
	vs := b.Move(engine.Pt(0.5, 0))
	require.Len(t, vs, 12)
	assert.Equal(t, red, vs[0].Color)
	assert.Equal(t, blue, vs[11].Color)
}

func TestBrushDoesNotInterpolate(t *testing.T) {
	b := NewBrush(0.01, red)
	b.Begin(engine.Pt(-0.9, 0))
	vs := b.Move(engine.Pt(0.9, 0))
	assert.Len(t, vs, 12)
}

func TestEraserIsAlwaysWhite(t *testing.T) {
	e := NewEraser(0.05)
	e.SetColor(red)
	e.Begin(engine.Pt(0, 0))
	e.Move(engine.Pt(0.1, 0))
	vs := e.End(engine.Pt(0.1, 0))
	require.Len(t, vs, 12)
	for _, v := range vs {
		assert.Equal(t, engine.White, v.Color)
	}
}

func TestLineZeroLength(t *testing.T) {
	l := NewLine(0.02, red)
	l.Begin(engine.Pt(0.3, 0.3))
	assert.Empty(t, l.Geometry())
	assert.Empty(t, l.End(engine.Pt(0.3, 0.3)))
}

func TestLineQuad(t *testing.T) {
	l := NewLine(0.1, red)
	l.Begin(engine.Pt(0, 0))
	vs := l.Move(engine.Pt(1, 0))
	require.Len(t, vs, 6)

	// Horizontal segment: the offset is purely vertical.
	assert.Equal(t, [2]float32{0, 0.1}, vs[0].Position)
	assert.Equal(t, [2]float32{0, -0.1}, vs[1].Position)
	assert.Equal(t, [2]float32{1, 0.1}, vs[2].Position)
	assert.Equal(t, [2]float32{1, -0.1}, vs[4].Position)

	final := l.End(engine.Pt(1, 0))
	assert.Equal(t, vs, final)
	assert.Empty(t, l.Geometry(), "end clears the endpoints")
}

func TestLineRecomputes(t *testing.T) {
	l := NewLine(0.05, red)
	l.Begin(engine.Pt(-0.5, -0.5))
	l.Move(engine.Pt(0.9, 0.9))
	a := l.Move(engine.Pt(0.2, 0.7))
	b := l.Move(engine.Pt(0.2, 0.7))
	assert.Equal(t, a, b)
	assert.Len(t, b, 6)
}

func TestRectangleScenario(t *testing.T) {
	r := NewRectangle(red)
	r.SetSize(5)
	r.Begin(engine.Pt(0, 0))
	r.Move(engine.Pt(1, 0))
	r.Move(engine.Pt(1, 1))
	vs := r.End(engine.Pt(1, 1))
	require.Len(t, vs, 6)

	want := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}}
	for i, v := range vs {
		assert.Equal(t, want[i], v.Position)
		assert.Equal(t, red, v.Color)
	}
	assert.Empty(t, r.Geometry())
}

func TestRectangleNormalisesCorners(t *testing.T) {
	r := NewRectangle(red)
	r.Begin(engine.Pt(0.5, 0.5))
	a := r.Move(engine.Pt(-0.5, -0.25))
	b := r.Move(engine.Pt(-0.5, -0.25))
	assert.Equal(t, a, b)
	assert.Equal(t, [2]float32{-0.5, -0.25}, a[0].Position)
	assert.Equal(t, [2]float32{0.5, 0.5}, a[2].Position)
}

func TestActiveDispatch(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			a := New(k, 0.01, red)
			assert.Equal(t, k, a.Kind())
			a.Begin(engine.Pt(0, 0))
			a.Move(engine.Pt(0.5, 0.5))
			vs := a.End(engine.Pt(0.5, 0.5))
			assert.NotEmpty(t, vs)
			assert.Zero(t, len(vs)%6)
		})
	}
}

func TestActiveForwardsStyle(t *testing.T) {
	a := New(KindBrush, 0.01, engine.Black)
	a.SetColor(red)
	a.SetSize(0.2)
	assert.Equal(t, red, a.brush.color)
	assert.Equal(t, float32(0.2), a.brush.size)

	r := New(KindRectangle, 0.01, engine.Black)
	r.SetSize(0.2)
	r.SetColor(red)
	assert.Equal(t, red, r.rectangle.color)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("rectangle")
	require.NoError(t, err)
	assert.Equal(t, KindRectangle, got)

	_, err = ParseKind("lasso")
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
