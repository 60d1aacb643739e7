package svgvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream(s string) Stream {
	return NewStream(NewSpan(s, 0, len(s)))
}

func TestStreamSkipSpaces(t *testing.T) {
	s := newTestStream("  \t\r\nx")
	s.SkipSpaces()
	b, ok := s.curByte()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
}

func TestStreamConsumeByte(t *testing.T) {
	s := newTestStream("ab")
	require.NoError(t, s.ConsumeByte('a'))

	err := s.ConsumeByte('z')
	require.Error(t, err)
	svgErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidChar, svgErr.Kind)
	assert.Equal(t, byte('z'), svgErr.Expected)
	assert.Equal(t, byte('b'), svgErr.Found)
}

func TestStreamConsumeIdent(t *testing.T) {
	s := newTestStream("foo-bar_2 rest")
	span, err := s.ConsumeIdent()
	require.NoError(t, err)
	assert.Equal(t, "foo-bar_2", span.Str())
}

func TestStreamParseInteger(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int32
		wantErr bool
	}{
		{name: "plain", input: "42", want: 42},
		{name: "signed", input: "-7", want: -7},
		{name: "plus", input: "+7", want: 7},
		{name: "overflow", input: "2147483648", wantErr: true},
		{name: "no digits", input: "-", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStream(c.input)
			got, err := s.ParseInteger()
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStreamParseNumber(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "10", want: 10},
		{name: "negative", input: "-20", want: -20},
		{name: "leading dot", input: ".5", want: 0.5},
		{name: "trailing dot", input: "5.", want: 5},
		{name: "exponent", input: "1e2", want: 100},
		{name: "signed exponent", input: "1.5e-2", want: 0.015},
		{name: "bare dot", input: ".", wantErr: true},
		{name: "bare sign", input: "-", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStream(c.input)
			got, err := s.ParseNumber()
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStreamParseNumberConcatenation(t *testing.T) {
	// "10-20" must split into 10 and -20: the sign is the separator.
	s := newTestStream("10-20")
	a, err := s.ParseNumber()
	require.NoError(t, err)
	assert.Equal(t, 10.0, a)

	b, err := s.ParseNumber()
	require.NoError(t, err)
	assert.Equal(t, -20.0, b)
}

func TestStreamParseListSeparator(t *testing.T) {
	s := newTestStream("  , 5")
	require.NoError(t, s.ParseListSeparator())
	b, ok := s.curByte()
	require.True(t, ok)
	assert.Equal(t, byte('5'), b)

	bad := newTestStream(" , , 5")
	err := bad.ParseListSeparator()
	require.Error(t, err)
}

func TestStreamParseLength(t *testing.T) {
	cases := []struct {
		name  string
		input string
		value float64
		unit  Unit
	}{
		{name: "unitless", input: "12", value: 12, unit: UnitNone},
		{name: "px", input: "12px", value: 12, unit: UnitPx},
		{name: "percent", input: "50%", value: 50, unit: UnitPercent},
		{name: "em", input: "1.5em", value: 1.5, unit: UnitEm},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStream(c.input)
			l, err := s.ParseLength()
			require.NoError(t, err)
			assert.Equal(t, c.value, l.Value)
			assert.Equal(t, c.unit, l.Unit)
		})
	}
}

func TestStreamGenTextPos(t *testing.T) {
	s := newTestStream("ab\ncd\nef")
	require.NoError(t, s.advance(6)) // past the second '\n', at 'e'
	pos := s.GenTextPos()
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 1, pos.Column)
}

func TestStreamSetPosRejectsOutOfRange(t *testing.T) {
	s := newTestStream("abc")
	err := s.SetPos(10)
	require.Error(t, err)
	svgErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidAdvance, svgErr.Kind)
}
