package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo/interpreter-go/pkg/driver"
)

const nestedFailure = `TO INNER
FORWARD "A
END
TO OUTER
INNER
END
OUTER
`

func TestRuntimeDiagnosticIncludesCallNotes(t *testing.T) {
	h := newHarness(Options{})
	err := h.interp.RunFile("main.logo", mustParse(t, nestedFailure))
	rtErr := requireKind(t, err, KindTypeError)
	assert.Equal(t, "main.logo", rtErr.Path)
	assert.Equal(t, 2, rtErr.Location.Start.Line)
	assert.Equal(t, 9, rtErr.Location.Start.Column)

	diag := h.interp.BuildRuntimeDiagnostic(err)
	assert.Equal(t, driver.SeverityError, diag.Severity)
	assert.Equal(t, KindTypeError, diag.Kind)
	require.Len(t, diag.Notes, 2)
	assert.Equal(t, "called INNER from here", diag.Notes[0].Message)
	assert.Equal(t, 5, diag.Notes[0].Location.Line)
	assert.Equal(t, "called OUTER from here", diag.Notes[1].Message)
	assert.Equal(t, 7, diag.Notes[1].Location.Line)

	want := "runtime: main.logo:2:9 TypeError: FORWARD expects Number, found Text A\n" +
		"note: main.logo:5:1 called INNER from here\n" +
		"note: main.logo:7:1 called OUTER from here"
	assert.Equal(t, want, DescribeRuntimeDiagnostic(diag))
}

func TestRuntimeDiagnosticCapsNotes(t *testing.T) {
	h := newHarness(Options{})
	err := h.run(t, "TO R N\n  IF GT N 20 [ FORWARD \"X ]\n  R + N 1\nEND\nR 0")
	requireKind(t, err, KindTypeError)

	diag := h.interp.BuildRuntimeDiagnostic(err)
	assert.Len(t, diag.Notes, maxDiagnosticNotes)
}

func TestRuntimeDiagnosticWithoutPath(t *testing.T) {
	h := newHarness(Options{})
	err := h.run(t, "FORWARD / 1 0")
	diag := h.interp.BuildRuntimeDiagnostic(err)
	assert.Empty(t, diag.Notes)
	assert.Equal(t, "runtime: line 1, column 9 ArithmeticError: division by zero", DescribeRuntimeDiagnostic(diag))
}
