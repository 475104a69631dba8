package fluxins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowthorn/fluxins"
)

func plusOp() fluxins.BinaryOperator {
	return fluxins.BinaryOperator{
		Symbol: "+",
		Assoc:  fluxins.LeftAssoc,
		Operate: func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
			return x + y, nil
		},
	}
}

func starOp() fluxins.BinaryOperator {
	return fluxins.BinaryOperator{
		Symbol: "*",
		Assoc:  fluxins.LeftAssoc,
		Operate: func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
			return x * y, nil
		},
	}
}

func TestConfigAddAndGetBinaryOp(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	assert.True(t, cfg.HasBinaryOp("+"))
	assert.False(t, cfg.HasBinaryOp("*"))

	got, err := cfg.GetBinaryOp("+")
	require.NoError(t, err)
	assert.Equal(t, "+", got.Symbol)

	err = cfg.AddBinaryOp(plusOp())
	assert.Error(t, err, "duplicate symbol should fail")
}

func TestConfigAssignPrecedence(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	require.NoError(t, cfg.AddBinaryOp(starOp()))

	require.NoError(t, cfg.AssignPrecedenceLowest("+", true, false))
	require.NoError(t, cfg.AssignPrecedence("*", 0, true, false))

	plusRow, ok := cfg.PrecedenceOf("+")
	require.True(t, ok)
	starRow, ok := cfg.PrecedenceOf("*")
	require.True(t, ok)
	assert.Less(t, starRow, plusRow, "* should bind tighter than +")
}

func TestConfigAssignPrecedenceOverrideShiftsRows(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	require.NoError(t, cfg.AddBinaryOp(starOp()))

	require.NoError(t, cfg.AssignPrecedence("*", 0, true, false))
	require.NoError(t, cfg.AssignPrecedence("+", 1, true, false))

	// Reassigning "*" to row 1 (same row as "+") without inserting a new
	// row should remove its now-empty old row 0 and land both operators
	// together.
	require.NoError(t, cfg.AssignPrecedence("*", 1, false, true))

	row, ok := cfg.PrecedenceOf("*")
	require.True(t, ok)
	assert.Equal(t, 0, row)
	row, ok = cfg.PrecedenceOf("+")
	require.True(t, ok)
	assert.Equal(t, 0, row)
}

func TestConfigAssignPrecedenceWithoutOverrideErrors(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	require.NoError(t, cfg.AssignPrecedenceLowest("+", true, false))

	err := cfg.AssignPrecedenceLowest("+", true, false)
	assert.Error(t, err)
}

func TestConfigUnassignPrecedence(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	require.NoError(t, cfg.AssignPrecedenceLowest("+", true, false))

	require.NoError(t, cfg.UnassignPrecedence("+"))
	_, ok := cfg.PrecedenceOf("+")
	assert.False(t, ok)
	assert.True(t, cfg.HasBinaryOp("+"), "unassigning precedence keeps the operator registered")
}

func TestConfigRemoveBinaryOp(t *testing.T) {
	cfg := fluxins.NewConfig()
	require.NoError(t, cfg.AddBinaryOp(plusOp()))
	require.NoError(t, cfg.AddBinaryOp(starOp()))
	require.NoError(t, cfg.AssignPrecedenceLowest("+", true, false))
	require.NoError(t, cfg.AssignPrecedence("*", 0, true, false))

	require.NoError(t, cfg.RemoveBinaryOp("*"))
	assert.False(t, cfg.HasBinaryOp("*"))
	row, ok := cfg.PrecedenceOf("+")
	require.True(t, ok)
	assert.Equal(t, 0, row)
}

func TestConfigPrefixAndSuffixOps(t *testing.T) {
	cfg := fluxins.NewConfig()
	neg := fluxins.UnaryOperator{
		Symbol: "-",
		Operate: func(code *fluxins.Code, loc fluxins.CodeLocation, x float32) (float32, error) {
			return -x, nil
		},
	}
	require.NoError(t, cfg.AddPrefixOp(neg))
	assert.True(t, cfg.HasPrefixOp("-"))
	assert.False(t, cfg.HasSuffixOp("-"))

	require.NoError(t, cfg.RemovePrefixOp("-"))
	assert.False(t, cfg.HasPrefixOp("-"))

	err := cfg.RemovePrefixOp("-")
	assert.Error(t, err)
}
