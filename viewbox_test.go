package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseViewBoxStr(v string) (ViewBox, error) {
	return ParseViewBox(NewSpan(v, 0, len(v)))
}

func TestViewBoxBasic(t *testing.T) {
	vb, err := parseViewBoxStr("0 0 100 200")
	require.NoError(t, err)
	assert.Equal(t, ViewBox{0, 0, 100, 200}, vb)
}

func TestViewBoxCommaSeparated(t *testing.T) {
	vb, err := parseViewBoxStr("0,0,100,200")
	require.NoError(t, err)
	assert.Equal(t, ViewBox{0, 0, 100, 200}, vb)
}

func TestViewBoxNegativeWidthIsError(t *testing.T) {
	_, err := parseViewBoxStr("0 0 -1 200")
	require.Error(t, err)
	assert.Equal(t, InvalidValue, err.(*Error).Kind)
}

func TestViewBoxNegativeHeightIsError(t *testing.T) {
	_, err := parseViewBoxStr("0 0 100 -1")
	require.Error(t, err)
}

func TestViewBoxTrailingDataIsError(t *testing.T) {
	_, err := parseViewBoxStr("0 0 100 200 300")
	require.Error(t, err)
}
