package svgvalue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(doc string) ([]Event, *Error) {
	es := NewEventStream(strings.NewReader(doc), nil)
	var events []Event
	for {
		ev, ok := es.Next()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return events, es.Err()
}

func TestEventStreamStartElementWithTransform(t *testing.T) {
	events, err := collectEvents(`<g transform="matrix(1 0 0 1 5 5)"/>`)
	require.Nil(t, err)
	require.Len(t, events, 2) // self-closing still yields Start then End
	start := events[0]
	assert.Equal(t, EventStartElement, start.Kind)
	assert.Equal(t, ElemG, start.Elem)
	require.Len(t, start.Attrs, 1)
	attr := start.Attrs[0]
	assert.Equal(t, SvgAttribute, attr.Kind)
	assert.Equal(t, AttrTransform, attr.Attr)
	assert.Equal(t, AVTransform, attr.Value.Kind)

	tr := attr.Value.TransformTokenizer(nil)
	tok, ok := tr.Next()
	require.True(t, ok)
	assert.Equal(t, TransformMatrix, tok.Kind)
	assert.Equal(t, [6]float64{1, 0, 0, 1, 5, 5}, tok.Args)
}

func TestEventStreamUnrecognizedAttributePassesThrough(t *testing.T) {
	events, err := collectEvents(`<rect data-id="box1"/>`)
	require.Nil(t, err)
	require.Len(t, events[0].Attrs, 1)
	attr := events[0].Attrs[0]
	assert.Equal(t, XmlAttribute, attr.Kind)
	assert.Equal(t, "data-id", attr.Local)
	assert.Equal(t, "box1", attr.Raw.Str())
}

func TestEventStreamTextAndComment(t *testing.T) {
	events, err := collectEvents(`<text>hi<!--c--></text>`)
	require.Nil(t, err)
	var sawText, sawComment bool
	for _, ev := range events {
		if ev.Kind == EventText && ev.Text.Str() == "hi" {
			sawText = true
		}
		if ev.Kind == EventComment && ev.Comment.Str() == "c" {
			sawComment = true
		}
	}
	assert.True(t, sawText)
	assert.True(t, sawComment)
}

func TestEventStreamWhitespaceBetweenElements(t *testing.T) {
	events, err := collectEvents("<svg>\n  <g/>\n</svg>")
	require.Nil(t, err)
	var sawWhitespace, sawText bool
	for _, ev := range events {
		switch ev.Kind {
		case EventWhitespace:
			sawWhitespace = true
		case EventText:
			sawText = true
		}
	}
	assert.True(t, sawWhitespace)
	assert.False(t, sawText)
}

func TestEventStreamUnrecognizedElement(t *testing.T) {
	events, err := collectEvents(`<bogusElem foo="bar"/>`)
	require.Nil(t, err)
	start := events[0]
	assert.False(t, start.Recognized)
	require.Len(t, start.Attrs, 1)
	assert.Equal(t, XmlAttribute, start.Attrs[0].Kind)
}
