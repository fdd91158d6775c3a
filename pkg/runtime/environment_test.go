package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logo/interpreter-go/pkg/ast"
)

func TestEnvironmentDefineAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Define("X", NumberValue{Val: 5})

	got, err := env.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 5}, got)

	_, err = env.Lookup("Y")
	var undefined *UndefinedVariableError
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "Y", undefined.Name)
	assert.EqualError(t, err, "undefined variable 'Y'")
}

func TestEnvironmentLookupWalksOutward(t *testing.T) {
	env := NewEnvironment()
	env.Define("G", BooleanValue{Val: true})
	env.Define("X", NumberValue{Val: 1})

	env.PushFrame()
	env.Define("X", NumberValue{Val: 2})

	x, err := env.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 2}, x)

	g, err := env.Lookup("G")
	require.NoError(t, err)
	assert.Equal(t, BooleanValue{Val: true}, g)

	env.PopFrame()
	x, err = env.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 1}, x)
}

func TestEnvironmentSetWritesThroughToOwner(t *testing.T) {
	env := NewEnvironment()
	env.Define("TOTAL", NumberValue{Val: 0})
	env.Define("X", NumberValue{Val: 1})

	env.PushFrame()
	env.Define("X", NumberValue{Val: 10})
	env.Set("TOTAL", NumberValue{Val: 7})
	env.Set("X", NumberValue{Val: 99})
	env.Set("LOCAL", TextValue{Val: "tmp"})
	local, err := env.Lookup("LOCAL")
	require.NoError(t, err)
	assert.Equal(t, TextValue{Val: "tmp"}, local)
	env.PopFrame()

	total, err := env.Lookup("TOTAL")
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 7}, total)

	x, err := env.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 1}, x)

	assert.False(t, env.Has("LOCAL"))
}

func TestEnvironmentAssignRequiresBinding(t *testing.T) {
	env := NewEnvironment()
	err := env.Assign("MISSING", NumberValue{Val: 1})
	var undefined *UndefinedVariableError
	require.True(t, errors.As(err, &undefined))

	env.Define("N", NumberValue{Val: 1})
	require.NoError(t, env.Assign("N", NumberValue{Val: 2}))
	got, _ := env.Lookup("N")
	assert.Equal(t, NumberValue{Val: 2}, got)
}

func TestEnvironmentGlobalFrameNeverPopped(t *testing.T) {
	env := NewEnvironment()
	env.Define("X", NumberValue{Val: 3})
	env.PopFrame()
	env.PopFrame()
	assert.Equal(t, 1, env.Depth())
	assert.True(t, env.Has("X"))
}

func TestEnvironmentWithFramePopsOnError(t *testing.T) {
	env := NewEnvironment()
	boom := errors.New("boom")

	err := env.WithFrame(map[string]Value{"P": NumberValue{Val: 4}}, func() error {
		assert.Equal(t, 2, env.Depth())
		p, err := env.Lookup("P")
		require.NoError(t, err)
		assert.Equal(t, NumberValue{Val: 4}, p)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, env.Depth())
	assert.False(t, env.Has("P"))
}

func TestEnvironmentProcedures(t *testing.T) {
	env := NewEnvironment()
	_, err := env.ResolveProcedure("BOX")
	var undefined *UndefinedProcedureError
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "BOX", undefined.Name)

	first := ast.Proc("BOX", []string{"S"})
	second := ast.Proc("BOX", []string{"W", "H"})
	env.DefineProcedure(first)
	env.DefineProcedure(ast.Proc("ARC", nil))
	env.DefineProcedure(second)

	def, err := env.ResolveProcedure("BOX")
	require.NoError(t, err)
	assert.Same(t, second, def)
	assert.Equal(t, []string{"ARC", "BOX"}, env.Procedures())
}
