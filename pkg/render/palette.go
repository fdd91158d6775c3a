package render

import "image/color"

// DefaultColor is the palette index a fresh turtle draws with (white).
const DefaultColor = 7

// Palette is the fixed 16-entry colour table addressed by PENCOLOR.
var Palette = [PaletteSize]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},       // black
	{R: 0, G: 0, B: 255, A: 255},     // blue
	{R: 0, G: 255, B: 255, A: 255},   // cyan
	{R: 0, G: 255, B: 0, A: 255},     // green
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 255, G: 0, B: 255, A: 255},   // magenta
	{R: 255, G: 255, B: 0, A: 255},   // yellow
	{R: 255, G: 255, B: 255, A: 255}, // white
	{R: 165, G: 42, B: 42, A: 255},   // brown
	{R: 210, G: 180, B: 140, A: 255}, // tan
	{R: 34, G: 139, B: 34, A: 255},   // forest
	{R: 127, G: 255, B: 212, A: 255}, // aqua
	{R: 250, G: 128, B: 114, A: 255}, // salmon
	{R: 128, G: 0, B: 128, A: 255},   // purple
	{R: 255, G: 165, B: 0, A: 255},   // orange
	{R: 128, G: 128, B: 128, A: 255}, // grey
}

// PaletteSize is the number of addressable colours.
const PaletteSize = 16

// LookupColor returns the palette entry for index.
func LookupColor(index int) (color.RGBA, bool) {
	if index < 0 || index >= len(Palette) {
		return color.RGBA{}, false
	}
	return Palette[index], true
}
