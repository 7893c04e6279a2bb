package engine

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Background is the color every frame is cleared to. The eraser relies on it
// being white.
var Background = White

// NewFrame allocates a w×h image and rasterizes vertices onto it.
func NewFrame(w, h int, vertices []Vertex) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Rasterize(img, vertices)
	return img
}

// Rasterize clears dst to the background color and fills every complete
// triangle in vertices with the color of its first vertex. A trailing partial
// triangle is ignored.
func Rasterize(dst *image.RGBA, vertices []Vertex) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(Background.NRGBA()), image.Point{}, draw.Src)
	if b.Empty() {
		return
	}
	w, h := float32(b.Dx()), float32(b.Dy())

	z := vector.NewRasterizer(1, 1)
	for i := 0; i+2 < len(vertices); i += 3 {
		var px [3][2]float32
		for j := range px {
			px[j] = toPixel(vertices[i+j].Position, w, h)
		}
		r := bounds(px).Add(b.Min).Intersect(b)
		if r.Empty() {
			continue
		}
		// The rasterizer only covers the triangle's bounding box.
		ox := float32(r.Min.X - b.Min.X)
		oy := float32(r.Min.Y - b.Min.Y)
		z.Reset(r.Dx(), r.Dy())
		z.MoveTo(px[0][0]-ox, px[0][1]-oy)
		z.LineTo(px[1][0]-ox, px[1][1]-oy)
		z.LineTo(px[2][0]-ox, px[2][1]-oy)
		z.ClosePath()
		z.Draw(dst, r, image.NewUniform(vertices[i].Color.NRGBA()), image.Point{})
	}
}

// toPixel maps an NDC position onto a w×h pixel grid with the origin at the
// top left.
func toPixel(p [2]float32, w, h float32) [2]float32 {
	return [2]float32{(p[0] + 1) / 2 * w, (1 - p[1]) / 2 * h}
}

func bounds(px [3][2]float32) image.Rectangle {
	minX, minY := px[0][0], px[0][1]
	maxX, maxY := minX, minY
	for _, p := range px[1:] {
		minX = min(minX, p[0])
		minY = min(minY, p[1])
		maxX = max(maxX, p[0])
		maxY = max(maxY, p[1])
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}
