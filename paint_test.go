package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePaintStr(v string) (PaintValue, error) {
	return ParsePaint(NewSpan(v, 0, len(v)))
}

func TestPaintNone(t *testing.T) {
	p, err := parsePaintStr("none")
	require.NoError(t, err)
	assert.Equal(t, PaintNone, p.Kind)
}

func TestPaintCurrentColor(t *testing.T) {
	p, err := parsePaintStr("currentColor")
	require.NoError(t, err)
	assert.Equal(t, PaintCurrentColor, p.Kind)
}

func TestPaintColor(t *testing.T) {
	p, err := parsePaintStr("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, PaintColor, p.Kind)
	assert.Equal(t, Color{R: 0xff}, p.Color)
}

func TestPaintIRIOnly(t *testing.T) {
	p, err := parsePaintStr("url(#grad1)")
	require.NoError(t, err)
	assert.Equal(t, PaintIRI, p.Kind)
	assert.Equal(t, "grad1", p.IRIRef.Fragment.Str())
	assert.False(t, p.HasFallback)
}

func TestPaintIRIWithColorFallback(t *testing.T) {
	p, err := parsePaintStr("url(#grad1) blue")
	require.NoError(t, err)
	assert.Equal(t, PaintIRI, p.Kind)
	assert.True(t, p.HasFallback)
	assert.Equal(t, PaintColor, p.FallbackKind)
	assert.Equal(t, Color{B: 0xff}, p.FallbackColor)
}

func TestPaintIRIWithNoneFallback(t *testing.T) {
	p, err := parsePaintStr("url(#grad1) none")
	require.NoError(t, err)
	assert.True(t, p.HasFallback)
	assert.Equal(t, PaintNone, p.FallbackKind)
}

func TestPaintIRIWithCurrentColorFallback(t *testing.T) {
	p, err := parsePaintStr("url(#grad) currentColor")
	require.NoError(t, err)
	assert.Equal(t, PaintIRI, p.Kind)
	assert.Equal(t, "grad", p.IRIRef.Fragment.Str())
	assert.True(t, p.HasFallback)
	assert.Equal(t, PaintCurrentColor, p.FallbackKind)
}
