package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTransformTokens(v string) ([]TransformToken, *Error) {
	tok := NewTransformTokenizer(NewSpan(v, 0, len(v)), nil)
	var tokens []TransformToken
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tk)
	}
	return tokens, tok.Err()
}

func TestTransformMatrix(t *testing.T) {
	tokens, err := collectTransformTokens("matrix(1 0 0 1 5 5)")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TransformMatrix, tokens[0].Kind)
	assert.Equal(t, [6]float64{1, 0, 0, 1, 5, 5}, tokens[0].Args)
}

func TestTransformTwoInList(t *testing.T) {
	tokens, err := collectTransformTokens("translate(10), scale(2)")
	require.Nil(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, TransformTranslate, tokens[0].Kind)
	assert.Equal(t, 1, tokens[0].ArgCount)
	assert.Equal(t, [6]float64{10, 0, 0, 0, 0, 0}, tokens[0].ArgsExpanded())

	assert.Equal(t, TransformScale, tokens[1].Kind)
	assert.Equal(t, 1, tokens[1].ArgCount)
	assert.Equal(t, [6]float64{2, 2, 0, 0, 0, 0}, tokens[1].ArgsExpanded())
}

func TestTransformRotateShortForms(t *testing.T) {
	tokens, err := collectTransformTokens("rotate(45) rotate(45, 10, 20)")
	require.Nil(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].ArgCount)
	assert.Equal(t, 3, tokens[1].ArgCount)
	assert.Equal(t, 10.0, tokens[1].Args[1])
	assert.Equal(t, 20.0, tokens[1].Args[2])
}

func TestTransformWrongArgCount(t *testing.T) {
	_, err := collectTransformTokens("skewX(1, 2)")
	require.NotNil(t, err)
	assert.Equal(t, InvalidTransform, err.Kind)
}

func TestTransformRotateTwoArgsIsError(t *testing.T) {
	_, err := collectTransformTokens("rotate(30, 5)")
	require.NotNil(t, err)
	assert.Equal(t, InvalidTransform, err.Kind)
}

func TestTransformUnknownKeyword(t *testing.T) {
	_, err := collectTransformTokens("bogus(1)")
	require.NotNil(t, err)
	assert.Equal(t, InvalidTransform, err.Kind)
}

func TestTransformCaseSensitiveKeyword(t *testing.T) {
	_, err := collectTransformTokens("Matrix(1 0 0 1 0 0)")
	require.NotNil(t, err)
}
