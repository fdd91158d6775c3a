package render

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExtension is returned for image paths that are neither .svg
// nor .png.
var ErrUnsupportedExtension = errors.New("unsupported image file extension")

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatForPath picks the output format from the path's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q (want .svg or .png)", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

type Point struct {
	X float32
	Y float32
}

// Segment is a drawn line between two points.
type Segment struct {
	From  Point
	To    Point
	Color int
}

// Canvas is a Sink that accumulates drawn segments on a fixed-size image.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA

	cursor   Point
	segments []Segment
}

// NewCanvas creates a black canvas with the cursor at its centre.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: Palette[0],
		cursor:     Point{X: float32(width) / 2, Y: float32(height) / 2},
	}
}

func (c *Canvas) Emit(cmd Command) {
	to := Point{X: cmd.X, Y: cmd.Y}
	if cmd.Op == OpLineTo {
		c.segments = append(c.segments, Segment{From: c.cursor, To: to, Color: cmd.Color})
	}
	c.cursor = to
}

// Segments returns the drawn segments in order.
func (c *Canvas) Segments() []Segment {
	return append([]Segment(nil), c.segments...)
}

// Save writes the canvas to path in the format its extension names.
func (c *Canvas) Save(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	switch format {
	case FormatSVG:
		err = c.WriteSVG(w)
	default:
		err = c.WritePNG(w)
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return file.Close()
}

type svgDocument struct {
	XMLName xml.Name  `xml:"svg"`
	XMLNS   string    `xml:"xmlns,attr"`
	Width   int       `xml:"width,attr"`
	Height  int       `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Rect    svgRect   `xml:"rect"`
	Lines   []svgLine `xml:"line"`
}

type svgRect struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgLine struct {
	X1          string `xml:"x1,attr"`
	Y1          string `xml:"y1,attr"`
	X2          string `xml:"x2,attr"`
	Y2          string `xml:"y2,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// WriteSVG encodes the canvas as an SVG document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	doc := svgDocument{
		XMLNS:   "http://www.w3.org/2000/svg",
		Width:   c.Width,
		Height:  c.Height,
		ViewBox: fmt.Sprintf("0 0 %d %d", c.Width, c.Height),
		Rect:    svgRect{Width: "100%", Height: "100%", Fill: rgb(c.Background)},
	}
	for _, seg := range c.segments {
		stroke, _ := LookupColor(seg.Color)
		doc.Lines = append(doc.Lines, svgLine{
			X1:          coord(seg.From.X),
			Y1:          coord(seg.From.Y),
			X2:          coord(seg.To.X),
			Y2:          coord(seg.To.Y),
			Stroke:      rgb(stroke),
			StrokeWidth: "1",
		})
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func coord(v float32) string {
	return fmt.Sprintf("%.2f", v)
}

// WritePNG rasterises the segments one pixel wide and encodes a PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.Background)
		}
	}
	for _, seg := range c.segments {
		stroke, _ := LookupColor(seg.Color)
		plotLine(img, seg.From, seg.To, stroke)
	}
	return png.Encode(w, img)
}

// plotLine steps along the longer axis so consecutive pixels touch.
func plotLine(img *image.RGBA, from, to Point, stroke color.RGBA) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		setPixel(img, float64(from.X), float64(from.Y), stroke)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setPixel(img, float64(from.X)+dx*t, float64(from.Y)+dy*t, stroke)
	}
}

func setPixel(img *image.RGBA, x, y float64, stroke color.RGBA) {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if !(image.Point{X: px, Y: py}).In(img.Bounds()) {
		return
	}
	img.SetRGBA(px, py, stroke)
}
