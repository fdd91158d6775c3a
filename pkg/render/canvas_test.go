package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	format, err := FormatForPath("out/picture.SVG")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, format)

	format, err = FormatForPath("picture.png")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)

	_, err = FormatForPath("picture.jpg")
	assert.True(t, errors.Is(err, ErrUnsupportedExtension))

	_, err = FormatForPath("picture")
	assert.True(t, errors.Is(err, ErrUnsupportedExtension))
}

func TestCanvasBuildsSegmentsFromCommands(t *testing.T) {
	canvas := NewCanvas(100, 50)
	canvas.Emit(MoveTo(50, 25))
	canvas.Emit(LineTo(50, 5, 7))
	canvas.Emit(MoveTo(10, 10))
	canvas.Emit(LineTo(20, 10, 4))
	canvas.Emit(LineTo(20, 20, 1))

	assert.Equal(t, []Segment{
		{From: Point{X: 50, Y: 25}, To: Point{X: 50, Y: 5}, Color: 7},
		{From: Point{X: 10, Y: 10}, To: Point{X: 20, Y: 10}, Color: 4},
		{From: Point{X: 20, Y: 10}, To: Point{X: 20, Y: 20}, Color: 1},
	}, canvas.Segments())
}

func TestCanvasStartsAtCentre(t *testing.T) {
	canvas := NewCanvas(40, 20)
	canvas.Emit(LineTo(20, 0, 2))
	require.Len(t, canvas.Segments(), 1)
	assert.Equal(t, Point{X: 20, Y: 10}, canvas.Segments()[0].From)
}

func TestCanvasWriteSVG(t *testing.T) {
	canvas := NewCanvas(200, 100)
	canvas.Emit(MoveTo(100, 50))
	canvas.Emit(LineTo(100, 0, 4))

	var buf bytes.Buffer
	require.NoError(t, canvas.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">`), out)
	assert.Contains(t, out, `<rect width="100%" height="100%" fill="rgb(0,0,0)"></rect>`)
	assert.Contains(t, out, `<line x1="100.00" y1="50.00" x2="100.00" y2="0.00" stroke="rgb(255,0,0)" stroke-width="1"></line>`)
	assert.Equal(t, 1, strings.Count(out, "<line "))
}

func TestCanvasWritePNG(t *testing.T) {
	canvas := NewCanvas(10, 10)
	canvas.Emit(MoveTo(1, 5))
	canvas.Emit(LineTo(8, 5, 3))

	var buf bytes.Buffer
	require.NoError(t, canvas.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	r, g, b, _ := img.At(4, 5).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0}, []uint32{r, g, b})
	r, g, b, _ = img.At(4, 2).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestCanvasPNGClipsOutOfBounds(t *testing.T) {
	canvas := NewCanvas(4, 4)
	canvas.Emit(MoveTo(-10, -10))
	canvas.Emit(LineTo(100, 100, 7))

	var buf bytes.Buffer
	require.NoError(t, canvas.WritePNG(&buf))
}

func TestCanvasSave(t *testing.T) {
	dir := t.TempDir()
	canvas := NewCanvas(8, 8)
	canvas.Emit(LineTo(4, 0, 7))

	svgPath := filepath.Join(dir, "out.svg")
	require.NoError(t, canvas.Save(svgPath))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<line ")

	pngPath := filepath.Join(dir, "out.png")
	require.NoError(t, canvas.Save(pngPath))
	file, err := os.Open(pngPath)
	require.NoError(t, err)
	defer file.Close()
	_, err = png.Decode(file)
	require.NoError(t, err)

	err = canvas.Save(filepath.Join(dir, "out.bmp"))
	assert.True(t, errors.Is(err, ErrUnsupportedExtension))
	_, statErr := os.Stat(filepath.Join(dir, "out.bmp"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRecorderAndMulti(t *testing.T) {
	var first, second Recorder
	sink := Multi(&first, &second)
	sink.Emit(MoveTo(1, 2))
	sink.Emit(LineTo(3, 4, 5))

	assert.Equal(t, []Command{MoveTo(1, 2), LineTo(3, 4, 5)}, first.Commands)
	assert.Equal(t, first.Commands, second.Commands)
	assert.Equal(t, []Command{LineTo(3, 4, 5)}, first.Lines())
	assert.Equal(t, "LineTo(3, 4, 5)", LineTo(3, 4, 5).String())
	assert.Equal(t, "MoveTo(1, 2)", MoveTo(1, 2).String())
}

func TestLookupColor(t *testing.T) {
	white, ok := LookupColor(DefaultColor)
	require.True(t, ok)
	assert.Equal(t, uint8(255), white.R)

	_, ok = LookupColor(PaletteSize)
	assert.False(t, ok)
	_, ok = LookupColor(-1)
	assert.False(t, ok)
}
