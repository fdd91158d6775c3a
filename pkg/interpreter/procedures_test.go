package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo/interpreter-go/pkg/render"
	"logo/interpreter-go/pkg/runtime"
)

const squareProcedure = `
TO SQUARE SIZE
  MAKE "I 0
  WHILE LT I 4 [
    FORWARD SIZE
    RIGHT 90
    ADDASSIGN "I 1
  ]
END
`

func TestProcedureDrawsSquare(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, squareProcedure+"SQUARE 10")

	lines := h.recorder.Lines()
	require.Len(t, lines, 4)
	assert.InDelta(t, 0, lines[0].X, 1e-4)
	assert.InDelta(t, -10, lines[0].Y, 1e-4)
	assert.InDelta(t, 10, lines[1].X, 1e-4)
	assert.InDelta(t, -10, lines[1].Y, 1e-4)
	assert.InDelta(t, 0, lines[3].X, 1e-4)
	assert.InDelta(t, 0, lines[3].Y, 1e-4)
	assert.Equal(t, float32(0), h.interp.Turtle().Heading)
	assert.False(t, h.interp.Environment().Has("SIZE"))
}

func TestParameterShadowsCallerBinding(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, `
MAKE "X 1
MAKE "Y 1
TO P X
  MAKE "X 99
  MAKE "Y 42
END
P 5
`)
	assert.Equal(t, runtime.NumberValue{Val: 1}, h.lookup(t, "X"))
	assert.Equal(t, runtime.NumberValue{Val: 42}, h.lookup(t, "Y"))
}

func TestCalleeSeesCallerBindings(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, `
MAKE "SEEN 0
TO INNER
  MAKE "SEEN A
END
TO OUTER A
  INNER
END
OUTER 7
`)
	assert.Equal(t, runtime.NumberValue{Val: 7}, h.lookup(t, "SEEN"))
	assert.False(t, h.interp.Environment().Has("A"))
}

func TestMakeOfNewNameStaysInCalleeFrame(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, "TO Q\n  MAKE \"FRESH 1\nEND\nQ")
	assert.False(t, h.interp.Environment().Has("FRESH"))
}

func TestArgumentsEvaluatedInCallerFrame(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, `
MAKE "N 3
MAKE "OUT 0
TO SHOW N
  MAKE "OUT N
END
TO WRAP N
  SHOW + N 1
END
WRAP * N 2
`)
	assert.Equal(t, runtime.NumberValue{Val: 7}, h.lookup(t, "OUT"))
}

func TestArityMismatch(t *testing.T) {
	for _, call := range []string{"SQUARE", "SQUARE 1 2"} {
		t.Run(call, func(t *testing.T) {
			h := newHarness(Options{})
			rtErr := requireKind(t, h.run(t, squareProcedure+call), KindArityMismatch)
			assert.Contains(t, rtErr.Message, "procedure SQUARE expects 1 argument(s)")
			assert.Empty(t, h.recorder.Lines())
			assert.Equal(t, 1, h.interp.Environment().Depth())
		})
	}
}

func TestUndefinedProcedure(t *testing.T) {
	h := newHarness(Options{})
	rtErr := requireKind(t, h.run(t, "SQUARE 10"+squareProcedure), KindUndefinedProcedure)
	assert.Equal(t, "undefined procedure 'SQUARE'", rtErr.Message)

	var undefined *runtime.UndefinedProcedureError
	assert.True(t, errors.As(rtErr, &undefined))
}

func TestProcedureRedefinitionReplaces(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, "TO STEP\nFORWARD 1\nEND\nTO STEP\nFORWARD 2\nEND\nSTEP")
	assert.Equal(t, []render.Command{render.LineTo(0, -2, render.DefaultColor)}, h.recorder.Lines())
	assert.Equal(t, []string{"STEP"}, h.interp.Environment().Procedures())
}

func TestFramePoppedWhenBodyFails(t *testing.T) {
	h := newHarness(Options{})
	err := h.run(t, "TO P X\n  FORWARD \"A\nEND\nP 1")
	requireKind(t, err, KindTypeError)

	assert.Equal(t, 1, h.interp.Environment().Depth())
	assert.False(t, h.interp.Environment().Has("X"))
	assert.Equal(t, 0, h.interp.state.depth())
}

func TestRecursionLimit(t *testing.T) {
	h := newHarness(Options{MaxCallDepth: 10})
	rtErr := requireKind(t, h.run(t, "MAKE \"DEEPEST 0\nTO R N\n  MAKE \"DEEPEST N\n  R + N 1\nEND\nR 1"), KindRecursionLimit)

	assert.Equal(t, "procedure R exceeds the maximum call depth of 10", rtErr.Message)
	assert.Equal(t, runtime.NumberValue{Val: 10}, h.lookup(t, "DEEPEST"))
	assert.Equal(t, 1, h.interp.Environment().Depth())
}

func TestRecursionTerminatesWithBaseCase(t *testing.T) {
	h := newHarness(Options{})
	h.mustRun(t, `
TO SPIRAL LEN
  IF GT LEN 0 [
    FORWARD LEN
    RIGHT 90
    SPIRAL - LEN 10
  ]
END
SPIRAL 30
`)
	assert.Len(t, h.recorder.Lines(), 3)
}

func TestErrorsIsMatchesKind(t *testing.T) {
	h := newHarness(Options{})
	err := h.run(t, "MAKE \"R / 1 0")
	assert.True(t, errors.Is(err, &RuntimeError{Kind: KindArithmeticError}))
	assert.False(t, errors.Is(err, &RuntimeError{Kind: KindTypeError}))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindArithmeticError, kind)
}
