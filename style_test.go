package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectStyleTokens(v string) ([]StyleToken, *Error) {
	tok := NewStyleTokenizer(NewSpan(v, 0, len(v)), nil)
	var tokens []StyleToken
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tk)
	}
	return tokens, tok.Err()
}

func TestStyleBasicDeclarations(t *testing.T) {
	tokens, err := collectStyleTokens("fill:red; stroke: blue ;")
	require.Nil(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, StyleDeclaration, tokens[0].Kind)
	assert.Equal(t, AttrFill, tokens[0].Attr)
	assert.Equal(t, "red", tokens[0].Value.Str())
	assert.Equal(t, StyleDeclaration, tokens[1].Kind)
	assert.Equal(t, AttrStroke, tokens[1].Attr)
	assert.Equal(t, "blue", tokens[1].Value.Str())
}

func TestStyleSkipsComments(t *testing.T) {
	tokens, err := collectStyleTokens("fill:red;/* comment */stroke:blue")
	require.Nil(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "red", tokens[0].Value.Str())
	assert.Equal(t, "blue", tokens[1].Value.Str())
}

func TestStyleCommentBeforeSeparator(t *testing.T) {
	tokens, err := collectStyleTokens("fill:red /* c */ ; stroke : url(#g) none")
	require.Nil(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, AttrFill, tokens[0].Attr)
	assert.Equal(t, "red", tokens[0].Value.Str())
	assert.Equal(t, AttrStroke, tokens[1].Attr)
	assert.Equal(t, "url(#g) none", tokens[1].Value.Str())
}

func TestStyleQuotedValueWithSemicolon(t *testing.T) {
	tokens, err := collectStyleTokens(`font-family:"A; B", sans-serif`)
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, `"A; B", sans-serif`, tokens[0].Value.Str())
}

func TestStyleUnknownPropertyIsPrefixedDeclaration(t *testing.T) {
	tokens, err := collectStyleTokens("-webkit-foo: bar")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, StylePrefixedDeclaration, tokens[0].Kind)
	assert.Equal(t, "-webkit-foo", tokens[0].Local.Str())
}

func TestStyleNamespacedProperty(t *testing.T) {
	tokens, err := collectStyleTokens("svg:fill: red")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, StylePrefixedDeclaration, tokens[0].Kind)
	assert.Equal(t, "svg", tokens[0].Prefix.Str())
	assert.Equal(t, "fill", tokens[0].Local.Str())
	assert.Equal(t, "red", tokens[0].Value.Str())
}

func TestStylePlainValueIsNotMistakenForPrefix(t *testing.T) {
	tokens, err := collectStyleTokens("stroke : url(#g) none")
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, StyleDeclaration, tokens[0].Kind)
	assert.Equal(t, AttrStroke, tokens[0].Attr)
	assert.Equal(t, "url(#g) none", tokens[0].Value.Str())
}

func TestStyleEntityRef(t *testing.T) {
	tokens, err := collectStyleTokens("fill:red;&ndash;")
	require.Nil(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, StyleEntityRef, tokens[1].Kind)
	assert.Equal(t, "ndash", tokens[1].Ref.Str())
}

func TestStyleUnterminatedComment(t *testing.T) {
	_, err := collectStyleTokens("fill:red;/* oops")
	require.NotNil(t, err)
}
