package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"

	"logo/interpreter-go/pkg/interpreter"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	noteLabel    = color.New(color.FgCyan)
)

// runtimeFailure keeps the interpreter that failed so the diagnostic can
// resolve node locations and the call stack.
type runtimeFailure struct {
	interp *interpreter.Interpreter
	err    error
}

func (f *runtimeFailure) Error() string {
	return interpreter.DescribeRuntimeDiagnostic(f.interp.BuildRuntimeDiagnostic(f.err))
}

func (f *runtimeFailure) Unwrap() error {
	return f.err
}

// reportError prints err to w, one "error:" entry per aggregated failure.
func reportError(w io.Writer, err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, inner := range merr.Errors {
			reportError(w, inner)
		}
		return
	}
	printLines(w, errorLabel, "error:", err.Error())
}

func reportWarning(w io.Writer, message string) {
	printLines(w, warningLabel, "warning:", strings.TrimPrefix(message, "warning: "))
}

func printLines(w io.Writer, label *color.Color, prefix, text string) {
	for idx, line := range strings.Split(text, "\n") {
		if idx > 0 && strings.HasPrefix(line, "note: ") {
			fmt.Fprintf(w, "  %s %s\n", noteLabel.Sprint("note:"), strings.TrimPrefix(line, "note: "))
			continue
		}
		if idx > 0 {
			fmt.Fprintf(w, "  %s\n", line)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", label.Sprint(prefix), line)
	}
}
