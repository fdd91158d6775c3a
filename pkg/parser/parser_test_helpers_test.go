package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"logo/interpreter-go/pkg/ast"
)

// programOptions compares trees structurally, ignoring source spans.
var programOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.IgnoreTypes(ast.Span{}),
	cmpopts.EquateEmpty(),
}

func mustParse(t testing.TB, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource(%q) error: %v", source, err)
	}
	return program
}

func assertProgramEqual(t testing.TB, expected, actual *ast.Program) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, programOptions...); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func requireParseError(t testing.TB, source string) *ParseError {
	t.Helper()
	_, err := ParseSource(source)
	if err == nil {
		t.Fatalf("ParseSource(%q) succeeded, want ParseError", source)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ParseSource(%q) error = %T (%v), want *ParseError", source, err, err)
	}
	return parseErr
}

func checkSpan(t testing.TB, label string, span ast.Span, startLine, startCol, endLine, endCol int) {
	t.Helper()
	if span.Start.Line != startLine || span.Start.Column != startCol {
		t.Fatalf("%s start span mismatch: got (%d,%d), want (%d,%d)", label, span.Start.Line, span.Start.Column, startLine, startCol)
	}
	if span.End.Line != endLine || span.End.Column != endCol {
		t.Fatalf("%s end span mismatch: got (%d,%d), want (%d,%d)", label, span.End.Line, span.End.Column, endLine, endCol)
	}
}
