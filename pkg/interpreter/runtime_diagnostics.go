package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/driver"
)

type runtimeDiagnosticContext struct {
	node      ast.Node
	callStack []callFrame
}

type RuntimeDiagnosticNote struct {
	Message  string
	Location driver.DiagnosticLocation
}

type RuntimeDiagnostic struct {
	Severity driver.DiagnosticSeverity
	Kind     ErrorKind
	Message  string
	Location driver.DiagnosticLocation
	Notes    []RuntimeDiagnosticNote
}

const maxDiagnosticNotes = 8

// BuildRuntimeDiagnostic turns an error returned by Run into a diagnostic
// pointing at the failing node, with one note per enclosing procedure call.
func (i *Interpreter) BuildRuntimeDiagnostic(err error) RuntimeDiagnostic {
	message := err.Error()
	kind, _ := KindOf(err)
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		message = rtErr.Message
	}
	ctx := runtimeContextFromError(err)

	location := driver.DiagnosticLocation{}
	if ctx != nil && ctx.node != nil {
		location = runtimeLocationFromNode(i, ctx.node)
	}

	var notes []RuntimeDiagnosticNote
	if ctx != nil {
		for idx := len(ctx.callStack) - 1; idx >= 0 && len(notes) < maxDiagnosticNotes; idx-- {
			call := ctx.callStack[idx].call
			if call == nil {
				continue
			}
			noteLocation := runtimeLocationFromNode(i, call)
			if noteLocation == (driver.DiagnosticLocation{}) || runtimeLocationsEqual(noteLocation, location) {
				continue
			}
			notes = append(notes, RuntimeDiagnosticNote{
				Message:  fmt.Sprintf("called %s from here", call.Name),
				Location: noteLocation,
			})
		}
	}

	return RuntimeDiagnostic{
		Severity: driver.SeverityError,
		Kind:     kind,
		Message:  message,
		Location: location,
		Notes:    notes,
	}
}

// DescribeRuntimeDiagnostic renders a diagnostic as
//
//	runtime: path:line:col Kind: message
//	note: path:line:col called NAME from here
func DescribeRuntimeDiagnostic(diag RuntimeDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	if diag.Kind != "" {
		message = fmt.Sprintf("%s: %s", diag.Kind, message)
	}
	prefix := "runtime: "
	if diag.Severity == driver.SeverityWarning {
		prefix = "warning: runtime: "
	}
	var b strings.Builder
	if location := driver.FormatLocation(diag.Location); location != "" {
		fmt.Fprintf(&b, "%s%s %s", prefix, location, message)
	} else {
		fmt.Fprintf(&b, "%s%s", prefix, message)
	}
	for _, note := range diag.Notes {
		if noteLoc := driver.FormatLocation(note.Location); noteLoc != "" {
			fmt.Fprintf(&b, "\nnote: %s %s", noteLoc, note.Message)
		} else {
			fmt.Fprintf(&b, "\nnote: %s", note.Message)
		}
	}
	return b.String()
}

// attachRuntimeContext records the innermost failing node and the call stack
// at that point on the RuntimeError inside err. Errors that already carry
// context pass through unchanged.
func (i *Interpreter) attachRuntimeContext(err error, node ast.Node) error {
	if err == nil || node == nil {
		return err
	}
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) || rtErr.context != nil {
		return err
	}
	rtErr.Location = node.Span()
	rtErr.Path = i.nodeOrigins[node]
	rtErr.context = &runtimeDiagnosticContext{
		node:      node,
		callStack: i.state.snapshotCallStack(),
	}
	return err
}

func runtimeContextFromError(err error) *runtimeDiagnosticContext {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.context
	}
	return nil
}

func runtimeLocationFromNode(i *Interpreter, node ast.Node) driver.DiagnosticLocation {
	if node == nil {
		return driver.DiagnosticLocation{}
	}
	span := node.Span()
	path := ""
	if i != nil {
		path = i.nodeOrigins[node]
	}
	if span.IsZero() {
		return driver.DiagnosticLocation{Path: path}
	}
	return driver.DiagnosticLocation{
		Path:      path,
		Line:      span.Start.Line,
		Column:    span.Start.Column,
		EndLine:   span.End.Line,
		EndColumn: span.End.Column,
	}
}

func runtimeLocationsEqual(left, right driver.DiagnosticLocation) bool {
	if left == (driver.DiagnosticLocation{}) || right == (driver.DiagnosticLocation{}) {
		return false
	}
	return left.Path == right.Path && left.Line == right.Line && left.Column == right.Column
}
