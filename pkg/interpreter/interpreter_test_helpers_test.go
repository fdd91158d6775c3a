package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/parser"
	"logo/interpreter-go/pkg/render"
	"logo/interpreter-go/pkg/runtime"
)

type harness struct {
	interp   *Interpreter
	recorder *render.Recorder
}

func newHarness(opts Options) *harness {
	rec := &render.Recorder{}
	opts.Sink = rec
	return &harness{interp: New(opts), recorder: rec}
}

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := parser.ParseSource(source)
	require.NoError(t, err, "parse %q", source)
	return program
}

// run parses and executes source, returning the run error.
func (h *harness) run(t *testing.T, source string) error {
	t.Helper()
	return h.interp.Run(mustParse(t, source))
}

func (h *harness) mustRun(t *testing.T, source string) {
	t.Helper()
	require.NoError(t, h.run(t, source))
}

func (h *harness) lookup(t *testing.T, name string) runtime.Value {
	t.Helper()
	val, err := h.interp.Environment().Lookup(name)
	require.NoError(t, err)
	return val
}

func requireKind(t *testing.T, err error, want ErrorKind) *RuntimeError {
	t.Helper()
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
	require.Equal(t, want, rtErr.Kind, "error: %v", err)
	return rtErr
}
