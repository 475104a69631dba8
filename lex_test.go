package fluxins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	code := NewCode("1 + foo(2, 3.5)")
	tokens, err := Tokenize(code)
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
		values[i] = tok.Value
	}

	assert.Equal(t, []string{"1", "+", "foo", "(", "2", ",", "3.5", ")"}, values)
	assert.Equal(t, []TokenKind{Number, Symbol, Identifier, Punctuation, Number, Punctuation, Number, Punctuation}, kinds)
}

func TestTokenizeNumberSeparators(t *testing.T) {
	code := NewCode("1'000_000")
	tokens, err := Tokenize(code)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "1000000", tokens[0].Value)
}

func TestTokenizeTrailingSeparatorErrors(t *testing.T) {
	code := NewCode("100_")
	_, err := Tokenize(code)
	assert.Error(t, err)
}

func TestTokenizeMultipleDecimalPointsErrors(t *testing.T) {
	code := NewCode("1.2.3")
	_, err := Tokenize(code)
	assert.Error(t, err)
}

func TestTokenizeInvalidCharacterErrors(t *testing.T) {
	code := NewCode("1 @ 2")
	_, err := Tokenize(code)
	assert.Error(t, err)
}

func TestTokenizeMaximalMunchSymbols(t *testing.T) {
	code := NewCode("a <<= b")
	tokens, err := Tokenize(code)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "<<=", tokens[1].Value)
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	code := NewCode("  1\t+\n2  ")
	tokens, err := Tokenize(code)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
}
