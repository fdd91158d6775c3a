package interpreter

import (
	"math"

	"logo/interpreter-go/pkg/render"
)

// Turtle is the drawing cursor. Coordinates are screen coordinates: x grows
// to the right and y grows downwards. Heading is in degrees, 0 faces up and
// positive angles turn clockwise.
type Turtle struct {
	X       float32
	Y       float32
	Heading float32
	PenDown bool
	Color   int
}

// NewTurtle places a turtle at the centre of a width x height canvas, facing
// up with the pen down and the default colour.
func NewTurtle(width, height float32) Turtle {
	return Turtle{
		X:       width / 2,
		Y:       height / 2,
		PenDown: true,
		Color:   render.DefaultColor,
	}
}

// destination returns the point distance units ahead along the heading.
func (t Turtle) destination(distance float32) (float32, float32) {
	rad := float64(t.Heading) * math.Pi / 180
	x := float64(t.X) + float64(distance)*math.Sin(rad)
	y := float64(t.Y) - float64(distance)*math.Cos(rad)
	return float32(x), float32(y)
}

func normalizeHeading(deg float32) float32 {
	h := math.Mod(float64(deg), 360)
	if h < 0 {
		h += 360
	}
	return float32(h)
}

// moveTo relocates the turtle and reports the draw command for the move.
func (i *Interpreter) moveTo(x, y float32) {
	i.turtle.X = x
	i.turtle.Y = y
	if i.turtle.PenDown {
		i.sink.Emit(render.LineTo(x, y, i.turtle.Color))
		return
	}
	i.sink.Emit(render.MoveTo(x, y))
}

func (i *Interpreter) advance(distance float32) {
	x, y := i.turtle.destination(distance)
	i.moveTo(x, y)
}

func (i *Interpreter) setHeading(deg float32) {
	i.turtle.Heading = normalizeHeading(deg)
}
