package interpreter

import (
	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/runtime"
)

// callProcedure evaluates the arguments in the caller's frame, then runs the
// body in a new frame binding each parameter. The frame is popped even when
// the body fails.
func (i *Interpreter) callProcedure(call *ast.ProcedureCall) error {
	def, err := i.env.ResolveProcedure(call.Name)
	if err != nil {
		return translateEnvironmentError(err)
	}
	if len(call.Args) != len(def.Params) {
		return newRuntimeError(KindArityMismatch, "procedure %s expects %d argument(s), got %d", def.Name, len(def.Params), len(call.Args))
	}

	bindings := make(map[string]runtime.Value, len(def.Params))
	for idx, arg := range call.Args {
		val, err := i.evaluateExpression(arg)
		if err != nil {
			return err
		}
		bindings[def.Params[idx]] = val
	}

	if i.maxCallDepth > 0 && i.state.depth() >= i.maxCallDepth {
		return newRuntimeError(KindRecursionLimit, "procedure %s exceeds the maximum call depth of %d", def.Name, i.maxCallDepth)
	}

	i.state.pushCallFrame(call, def)
	defer i.state.popCallFrame()
	i.log.Debugf("call %s (depth %d)", def.Name, i.state.depth())
	return i.env.WithFrame(bindings, func() error {
		return i.executeProgram(def.Body)
	})
}
