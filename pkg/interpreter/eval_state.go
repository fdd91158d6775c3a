package interpreter

import "logo/interpreter-go/pkg/ast"

type callFrame struct {
	call *ast.ProcedureCall
	def  *ast.ProcedureDefinition
}

// evalState tracks the procedure calls in progress. It mirrors the
// environment's frame stack and feeds diagnostics.
type evalState struct {
	callStack []callFrame
}

func newEvalState() *evalState {
	return &evalState{callStack: make([]callFrame, 0)}
}

func (s *evalState) reset() {
	if s == nil {
		return
	}
	s.callStack = s.callStack[:0]
}

func (s *evalState) pushCallFrame(call *ast.ProcedureCall, def *ast.ProcedureDefinition) {
	if s == nil {
		return
	}
	s.callStack = append(s.callStack, callFrame{call: call, def: def})
}

func (s *evalState) popCallFrame() {
	if s == nil || len(s.callStack) == 0 {
		return
	}
	s.callStack = s.callStack[:len(s.callStack)-1]
}

func (s *evalState) depth() int {
	if s == nil {
		return 0
	}
	return len(s.callStack)
}

func (s *evalState) snapshotCallStack() []callFrame {
	if s == nil || len(s.callStack) == 0 {
		return nil
	}
	out := make([]callFrame, len(s.callStack))
	copy(out, s.callStack)
	return out
}
