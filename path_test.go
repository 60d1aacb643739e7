package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPathTokens(d string) ([]PathToken, *Error) {
	tok := NewPathTokenizer(NewSpan(d, 0, len(d)), nil)
	var tokens []PathToken
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tk)
	}
	return tokens, tok.Err()
}

func TestPathBasicMoveLine(t *testing.T) {
	tokens, err := collectPathTokens("M0 0h10v10z")
	require.Nil(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, PathMoveTo, tokens[0].Cmd)
	assert.Equal(t, 0.0, tokens[0].X)
	assert.Equal(t, 0.0, tokens[0].Y)
	assert.Equal(t, PathHorizontalRel, tokens[1].Cmd)
	assert.Equal(t, 10.0, tokens[1].X)
	assert.Equal(t, PathVerticalRel, tokens[2].Cmd)
	assert.Equal(t, 10.0, tokens[2].Y)
	assert.Equal(t, PathCloseRel, tokens[3].Cmd)
}

func TestPathImplicitMoveBecomesLine(t *testing.T) {
	tokens, err := collectPathTokens("M5,5 10,10 15,15")
	require.Nil(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, PathMoveTo, tokens[0].Cmd)
	assert.Equal(t, Point{5, 5}, Point{tokens[0].X, tokens[0].Y})
	assert.Equal(t, PathLineTo, tokens[1].Cmd)
	assert.Equal(t, Point{10, 10}, Point{tokens[1].X, tokens[1].Y})
	assert.Equal(t, PathLineTo, tokens[2].Cmd)
	assert.Equal(t, Point{15, 15}, Point{tokens[2].X, tokens[2].Y})
}

func TestPathAnyCommandAfterClose(t *testing.T) {
	tokens, err := collectPathTokens("M0 0 Z L5 5")
	require.Nil(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, PathClose, tokens[1].Cmd)
	assert.Equal(t, PathLineTo, tokens[2].Cmd)
}

func TestPathNumberConcatenationAndArcFlags(t *testing.T) {
	tokens, err := collectPathTokens("M10-20A5.5.3-4 110-.1")
	require.Nil(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, PathMoveTo, tokens[0].Cmd)
	assert.Equal(t, 10.0, tokens[0].X)
	assert.Equal(t, -20.0, tokens[0].Y)

	arc := tokens[1]
	assert.Equal(t, PathArc, arc.Cmd)
	assert.Equal(t, 5.5, arc.Rx)
	assert.Equal(t, 0.3, arc.Ry)
	assert.Equal(t, -4.0, arc.XAxisRotation)
	assert.True(t, arc.LargeArc)
	assert.True(t, arc.Sweep)
	assert.Equal(t, 0.0, arc.X)
	assert.Equal(t, -0.1, arc.Y)
}

func TestPathMustStartWithMoveTo(t *testing.T) {
	tokens, err := collectPathTokens("L10 10")
	assert.Nil(t, tokens)
	require.NotNil(t, err)
	assert.Equal(t, InvalidPath, err.Kind)
}

func TestPathRoundTripConsumesAllNonWhitespace(t *testing.T) {
	d := "M0 0 L10 10 C1 1 2 2 3 3 Z"
	tok := NewPathTokenizer(NewSpan(d, 0, len(d)), nil)
	for {
		_, ok := tok.Next()
		if !ok {
			break
		}
	}
	require.Nil(t, tok.Err())
	assert.True(t, tok.s.AtEnd())
}

func TestPathCubicAndSmooth(t *testing.T) {
	tokens, err := collectPathTokens("M0,0 C1,1 2,2 3,3 S4,4 5,5")
	require.Nil(t, err)
	require.Len(t, tokens, 3)

	c := tokens[1]
	assert.Equal(t, PathCubic, c.Cmd)
	assert.Equal(t, 1.0, c.X1)
	assert.Equal(t, 1.0, c.Y1)
	assert.Equal(t, 2.0, c.X2)
	assert.Equal(t, 2.0, c.Y2)
	assert.Equal(t, 3.0, c.X)
	assert.Equal(t, 3.0, c.Y)

	sm := tokens[2]
	assert.Equal(t, PathSmoothCubic, sm.Cmd)
	assert.Equal(t, 4.0, sm.X2)
	assert.Equal(t, 4.0, sm.Y2)
	assert.Equal(t, 5.0, sm.X)
	assert.Equal(t, 5.0, sm.Y)
}
