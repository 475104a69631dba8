package fluxins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowthorn/fluxins"
)

func TestContextSetAndResolveVariable(t *testing.T) {
	ctx := fluxins.NewContext()
	ctx.SetVariable("x", 3)

	v, ok := ctx.ResolveVariable("x")
	require.True(t, ok)
	assert.Equal(t, float32(3), v)

	_, ok = ctx.ResolveVariable("y")
	assert.False(t, ok)
}

func TestContextSetAndResolveFunction(t *testing.T) {
	ctx := fluxins.NewContext()
	ctx.SetFunction("double", func(code *fluxins.Code, loc fluxins.CodeLocation, args []float32) (float32, error) {
		return args[0] * 2, nil
	})

	fn, ok := ctx.ResolveFunction("double")
	require.True(t, ok)
	v, err := fn(nil, fluxins.CodeLocation{}, []float32{21})
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestContextInheritanceSelfBeforeParent(t *testing.T) {
	parent := fluxins.NewContext()
	parent.SetVariable("x", 1)
	parent.SetVariable("y", 2)

	child := fluxins.NewContext()
	child.SetVariable("x", 100)
	child.InheritContext(parent)

	v, ok := child.ResolveVariable("x")
	require.True(t, ok)
	assert.Equal(t, float32(100), v, "child's own binding shadows the parent's")

	v, ok = child.ResolveVariable("y")
	require.True(t, ok)
	assert.Equal(t, float32(2), v, "falls through to the parent when unset locally")
}

func TestContextInheritanceFirstParentWins(t *testing.T) {
	p1 := fluxins.NewContext()
	p1.SetVariable("x", 1)
	p2 := fluxins.NewContext()
	p2.SetVariable("x", 2)

	child := fluxins.NewContext()
	child.InheritContext(p1)
	child.InheritContext(p2)

	v, ok := child.ResolveVariable("x")
	require.True(t, ok)
	assert.Equal(t, float32(1), v)
}

func TestContextZeroValueUsable(t *testing.T) {
	var ctx fluxins.Context
	ctx.SetVariable("x", 5)
	v, ok := ctx.ResolveVariable("x")
	require.True(t, ok)
	assert.Equal(t, float32(5), v)
}
