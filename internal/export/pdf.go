// Package export writes a picture of the current frame to PDF or PNG.
// It is a one-way snapshot: nothing here can be read back into a canvas.
package export

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"LocalPaint/internal/engine"
)

var ErrUnsupportedFormat = errors.New("export: unsupported format")

// WritePDF draws every triangle as a filled polygon on a landscape A4 page.
// The NDC square is stretched over the whole page, the same way the window
// stretches it.
func WritePDF(w io.Writer, vertices []engine.Vertex) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("LocalPaint export", true)
	p.SetCreator("LocalPaint", true)
	p.AddPage()
	pw, ph := p.GetPageSize()

	alpha := 1.0
	for i := 0; i+2 < len(vertices); i += 3 {
		c := vertices[i].Color.NRGBA()
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		if a := float64(c.A) / 255; a != alpha {
			p.SetAlpha(a, "Normal")
			alpha = a
		}
		pts := make([]gofpdf.PointType, 3)
		for j := range pts {
			pos := vertices[i+j].Position
			pts[j] = gofpdf.PointType{
				X: float64(pos[0]+1) / 2 * pw,
				Y: float64(1-pos[1]) / 2 * ph,
			}
		}
		p.Polygon(pts, "F")
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// WritePNG rasterizes the frame at width×height pixels.
func WritePNG(w io.Writer, vertices []engine.Vertex, width, height int) error {
	img := engine.NewFrame(width, height, vertices)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Write picks the format from name's extension.
func Write(w io.Writer, name string, vertices []engine.Vertex, width, height int) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pdf":
		return WritePDF(w, vertices)
	case ".png":
		return WritePNG(w, vertices, width, height)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// File writes the frame to path. The format follows the extension.
func File(path string, vertices []engine.Vertex, width, height int) (err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".png":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	if err := Write(f, path, vertices, width, height); err != nil {
		return err
	}
	log.Printf("[EXPORT] Wrote %d triangles to %s", len(vertices)/3, path)
	return nil
}
