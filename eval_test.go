package fluxins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalText(t *testing.T, text string, cfg *Config, ctx *Context) (float32, error) {
	t.Helper()
	code := NewCode(text)
	tokens, err := Tokenize(code)
	require.NoError(t, err)
	n, err := Parse(code, tokens, cfg)
	require.NoError(t, err)
	if ctx == nil {
		ctx = NewContext()
	}
	return n.evaluate(code, cfg, ctx)
}

func TestEvaluateArithmetic(t *testing.T) {
	cfg := testConfig()
	v, err := evalText(t, "1 + 2 * 3", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
}

func TestEvaluateVariable(t *testing.T) {
	cfg := testConfig()
	ctx := NewContext()
	ctx.SetVariable("x", 10)
	v, err := evalText(t, "x + 1", cfg, ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(11), v)
}

func TestEvaluateUnresolvedVariableError(t *testing.T) {
	cfg := testConfig()
	_, err := evalText(t, "y", cfg, nil)
	assert.Error(t, err)

	var uerr *UnresolvedReferenceError
	assert.ErrorAs(t, err, &uerr)
}

func TestEvaluateFunctionCall(t *testing.T) {
	cfg := testConfig()
	ctx := NewContext()
	ctx.SetFunction("double", func(code *Code, loc CodeLocation, args []float32) (float32, error) {
		return args[0] * 2, nil
	})
	v, err := evalText(t, "double(21)", cfg, ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestEvaluateUnresolvedFunctionError(t *testing.T) {
	cfg := testConfig()
	_, err := evalText(t, "nope(1)", cfg, nil)
	assert.Error(t, err)
}

func TestEvaluateConditionalShortCircuits(t *testing.T) {
	cfg := testConfig()
	ctx := NewContext()
	called := false
	ctx.SetFunction("boom", func(code *Code, loc CodeLocation, args []float32) (float32, error) {
		called = true
		return 0, nil
	})
	v, err := evalText(t, "1 ? 5 : boom()", cfg, ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(5), v)
	assert.False(t, called, "the untaken branch must not be evaluated")
}

func TestEvaluateConditionalFalseBranch(t *testing.T) {
	cfg := testConfig()
	v, err := evalText(t, "0 ? 1 : 2", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(2), v)
}

func TestEvaluatePrefixAndSuffixOperators(t *testing.T) {
	cfg := testConfig()
	v, err := evalText(t, "-3!", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(-3), v)
}

func TestEvaluateRightAssociativePower(t *testing.T) {
	cfg := testConfig()
	v, err := evalText(t, "2 ** 3 ** 2", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(512), v)
}
