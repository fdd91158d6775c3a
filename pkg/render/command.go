// Package render receives turtle draw commands and turns them into images.
package render

import "fmt"

type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
)

func (o Op) String() string {
	switch o {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is one turtle movement. MoveTo relocates the pen without drawing;
// LineTo draws from the previous position to (X, Y) in palette colour Color.
type Command struct {
	Op    Op
	X     float32
	Y     float32
	Color int
}

func MoveTo(x, y float32) Command {
	return Command{Op: OpMoveTo, X: x, Y: y}
}

func LineTo(x, y float32, color int) Command {
	return Command{Op: OpLineTo, X: x, Y: y, Color: color}
}

func (c Command) String() string {
	if c.Op == OpLineTo {
		return fmt.Sprintf("LineTo(%g, %g, %d)", c.X, c.Y, c.Color)
	}
	return fmt.Sprintf("MoveTo(%g, %g)", c.X, c.Y)
}

// Sink consumes draw commands in emission order.
type Sink interface {
	Emit(Command)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Command)

func (f SinkFunc) Emit(cmd Command) { f(cmd) }

// Recorder keeps every command it receives.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Emit(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Lines returns only the LineTo commands.
func (r *Recorder) Lines() []Command {
	var out []Command
	for _, cmd := range r.Commands {
		if cmd.Op == OpLineTo {
			out = append(out, cmd)
		}
	}
	return out
}

// Multi fans commands out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(cmd Command) {
		for _, s := range sinks {
			s.Emit(cmd)
		}
	})
}
