// Package interpreter executes Logo programs by walking their syntax trees.
// An Interpreter owns one environment and one turtle; running two programs
// independently requires two interpreters.
package interpreter

import (
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/render"
	"logo/interpreter-go/pkg/runtime"
)

// Options configures a new Interpreter.
type Options struct {
	// Width and Height are the canvas dimensions; the turtle starts at the
	// centre.
	Width  float32
	Height float32
	// Sink receives draw commands. Commands are discarded when nil.
	Sink render.Sink
	// PaletteSize bounds PENCOLOR. Values outside (0, render.PaletteSize]
	// fall back to render.PaletteSize.
	PaletteSize int
	// MaxCallDepth limits nested procedure calls; 0 means unlimited.
	MaxCallDepth int
	Logger       slog.Logger
}

type Interpreter struct {
	env          *runtime.Environment
	turtle       Turtle
	sink         render.Sink
	paletteSize  int
	maxCallDepth int
	log          slog.Logger
	state        *evalState
	nodeOrigins  map[ast.Node]string
	started      bool
}

// New creates an interpreter with a fresh global frame and a turtle at the
// centre of the canvas.
func New(opts Options) *Interpreter {
	sink := opts.Sink
	if sink == nil {
		sink = render.SinkFunc(func(render.Command) {})
	}
	paletteSize := opts.PaletteSize
	if paletteSize <= 0 || paletteSize > render.PaletteSize {
		paletteSize = render.PaletteSize
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Interpreter{
		env:          runtime.NewEnvironment(),
		turtle:       NewTurtle(opts.Width, opts.Height),
		sink:         sink,
		paletteSize:  paletteSize,
		maxCallDepth: opts.MaxCallDepth,
		log:          log,
		state:        newEvalState(),
		nodeOrigins:  make(map[ast.Node]string),
	}
}

// Environment exposes the variable and procedure namespace.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Turtle returns a copy of the current turtle state.
func (i *Interpreter) Turtle() Turtle {
	return i.turtle
}

// Run executes program. The first call announces the turtle's starting
// position to the sink with a MoveTo. Execution stops at the first error,
// which is returned as *RuntimeError; the turtle keeps the state reached by
// the last completed instruction.
func (i *Interpreter) Run(program *ast.Program) error {
	if program == nil {
		return nil
	}
	if !i.started {
		i.started = true
		i.sink.Emit(render.MoveTo(i.turtle.X, i.turtle.Y))
	}
	i.state.reset()
	if err := i.executeProgram(program); err != nil {
		i.log.Debugf("run failed: %v", err)
		return err
	}
	i.log.Debugf("run finished at (%g, %g) heading %g", i.turtle.X, i.turtle.Y, i.turtle.Heading)
	return nil
}

// RunFile is Run for a program loaded from path; diagnostics for its nodes
// carry the path.
func (i *Interpreter) RunFile(path string, program *ast.Program) error {
	i.recordOrigins(path, program)
	return i.Run(program)
}

func (i *Interpreter) recordOrigins(path string, program *ast.Program) {
	if path == "" || program == nil {
		return
	}
	ast.Inspect(program, func(n ast.Node) bool {
		i.nodeOrigins[n] = path
		return true
	})
}
