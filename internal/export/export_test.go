package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/engine"
)

func square() []engine.Vertex {
	return engine.AppendSquare(nil, engine.Pt(0, 0), 0.5, engine.Color{0, 0, 1, 0.5})
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, square()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, nil))
	assert.NotZero(t, buf.Len())
}

func TestWritePNG(t *testing.T) {
	opaque := engine.AppendSquare(nil, engine.Pt(0, 0), 0.5, engine.Color{0, 0, 1, 1})
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, opaque, 40, 20))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	r, g, b, _ := img.At(25, 13).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(1, 1)))
}

func TestWriteUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "frame.svg", square(), 10, 10)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame.pdf", "frame.PNG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, File(path, square(), 16, 16))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	path := filepath.Join(dir, "frame.txt")
	assert.ErrorIs(t, File(path, square(), 16, 16), ErrUnsupportedFormat)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
