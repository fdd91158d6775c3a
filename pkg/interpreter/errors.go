package interpreter

import (
	"errors"
	"fmt"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/runtime"
)

// ErrorKind classifies a RuntimeError.
type ErrorKind string

const (
	KindUndefinedVariable  ErrorKind = "UndefinedVariable"
	KindUndefinedProcedure ErrorKind = "UndefinedProcedure"
	KindArityMismatch      ErrorKind = "ArityMismatch"
	KindTypeError          ErrorKind = "TypeError"
	KindArithmeticError    ErrorKind = "ArithmeticError"
	KindColorRangeError    ErrorKind = "ColorRangeError"
	KindRecursionLimit     ErrorKind = "RecursionLimit"
)

// RuntimeError is the single terminal error of a failed run. Location is the
// span of the innermost node being evaluated when the failure occurred and
// Path the file it came from, when known.
type RuntimeError struct {
	Kind     ErrorKind
	Message  string
	Path     string
	Location ast.Span
	Err      error

	context *runtimeDiagnosticContext
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *RuntimeError by kind, so callers can test
// errors.Is(err, &RuntimeError{Kind: KindTypeError}).
func (e *RuntimeError) Is(target error) bool {
	var other *RuntimeError
	if !errors.As(target, &other) || other == nil || e == nil {
		return false
	}
	return other.Message == "" && other.Kind == e.Kind
}

// KindOf returns the kind of the RuntimeError wrapped in err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.Kind, true
	}
	return "", false
}

func newRuntimeError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func newTypeError(context string, want runtime.Kind, got runtime.Value) *RuntimeError {
	return newRuntimeError(KindTypeError, "%s expects %s, found %s", context, want, runtime.Describe(got))
}

func newDivisionByZeroError() *RuntimeError {
	return newRuntimeError(KindArithmeticError, "division by zero")
}

// translateEnvironmentError maps environment lookup failures onto runtime
// error kinds.
func translateEnvironmentError(err error) error {
	var undefinedVar *runtime.UndefinedVariableError
	if errors.As(err, &undefinedVar) {
		return &RuntimeError{Kind: KindUndefinedVariable, Message: err.Error(), Err: err}
	}
	var undefinedProc *runtime.UndefinedProcedureError
	if errors.As(err, &undefinedProc) {
		return &RuntimeError{Kind: KindUndefinedProcedure, Message: err.Error(), Err: err}
	}
	return err
}
