package runtime

import (
	"fmt"
	"sort"

	"logo/interpreter-go/pkg/ast"
)

// UndefinedVariableError reports a name bound in no active frame.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// UndefinedProcedureError reports a call to a name with no TO definition.
type UndefinedProcedureError struct {
	Name string
}

func (e *UndefinedProcedureError) Error() string {
	return fmt.Sprintf("undefined procedure '%s'", e.Name)
}

type frame map[string]Value

// Environment is a stack of variable frames plus the procedure table of one
// interpreter run. Lookups walk from the innermost frame outwards, so a
// procedure sees its callers' bindings unless it shadows them. The global
// frame at the bottom is never popped.
type Environment struct {
	frames     []frame
	procedures map[string]*ast.ProcedureDefinition
}

// NewEnvironment creates an environment holding only the global frame.
func NewEnvironment() *Environment {
	return &Environment{
		frames:     []frame{make(frame)},
		procedures: make(map[string]*ast.ProcedureDefinition),
	}
}

// Depth returns the number of frames, 1 when only the global frame exists.
func (e *Environment) Depth() int {
	return len(e.frames)
}

func (e *Environment) top() frame {
	return e.frames[len(e.frames)-1]
}

// Define inserts or overwrites a binding in the current top frame.
func (e *Environment) Define(name string, value Value) {
	e.top()[name] = value
}

// Lookup resolves name against the frames from innermost to global.
func (e *Environment) Lookup(name string) (Value, error) {
	if idx := e.owner(name); idx >= 0 {
		return e.frames[idx][name], nil
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Set implements MAKE: it overwrites the binding in the innermost frame that
// already owns name, or defines it in the current top frame otherwise.
func (e *Environment) Set(name string, value Value) {
	if idx := e.owner(name); idx >= 0 {
		e.frames[idx][name] = value
		return
	}
	e.Define(name, value)
}

// Assign overwrites an existing binding and fails when name is unbound.
func (e *Environment) Assign(name string, value Value) error {
	idx := e.owner(name)
	if idx < 0 {
		return &UndefinedVariableError{Name: name}
	}
	e.frames[idx][name] = value
	return nil
}

// Has reports whether name is bound in any active frame.
func (e *Environment) Has(name string) bool {
	return e.owner(name) >= 0
}

func (e *Environment) owner(name string) int {
	for idx := len(e.frames) - 1; idx >= 0; idx-- {
		if _, ok := e.frames[idx][name]; ok {
			return idx
		}
	}
	return -1
}

// PushFrame opens a new, empty innermost frame.
func (e *Environment) PushFrame() {
	e.frames = append(e.frames, make(frame))
}

// PopFrame discards the innermost frame. The global frame stays in place.
func (e *Environment) PopFrame() {
	if len(e.frames) <= 1 {
		return
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
}

// WithFrame runs fn inside a fresh frame seeded with bindings. The frame is
// popped when fn returns, whether or not it failed.
func (e *Environment) WithFrame(bindings map[string]Value, fn func() error) error {
	e.PushFrame()
	defer e.PopFrame()
	for name, value := range bindings {
		e.Define(name, value)
	}
	return fn()
}

// DefineProcedure registers def globally, replacing any earlier definition
// with the same name.
func (e *Environment) DefineProcedure(def *ast.ProcedureDefinition) {
	e.procedures[def.Name] = def
}

// ResolveProcedure looks a procedure up by name.
func (e *Environment) ResolveProcedure(name string) (*ast.ProcedureDefinition, error) {
	if def, ok := e.procedures[name]; ok {
		return def, nil
	}
	return nil, &UndefinedProcedureError{Name: name}
}

// Procedures returns the defined procedure names in sorted order.
func (e *Environment) Procedures() []string {
	names := make([]string, 0, len(e.procedures))
	for name := range e.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
