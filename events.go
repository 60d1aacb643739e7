package svgvalue

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// EventKind identifies one event of the top-level SVG document stream.
type EventKind int

const (
	EventStartElement EventKind = iota
	EventEndElement
	EventText
	EventWhitespace
	EventComment
)

// AttrKind distinguishes an attribute this package recognizes (and has
// already dispatched to a typed AttributeValue) from one it passes through
// unresolved.
type AttrKind int

const (
	SvgAttribute AttrKind = iota
	XmlAttribute
)

// AttrEvent is one attribute found on a StartElement.
//
// For SvgAttribute, Attr and Value are populated: Attr is the recognized
// AttributeId and Value is the result of dispatching the attribute's text
// through AttrValueOf for the enclosing element. For XmlAttribute (an
// attribute this package's tables don't recognize, e.g. a namespaced
// `xlink:title` or an author's custom data-* attribute, any attribute of an
// unrecognized element, or a recognized attribute whose value failed its
// grammar), Prefix/Local/Raw carry the name and unparsed text instead.
// Prefix is the decoder's Name.Space: the namespace URI when the prefix is
// bound, otherwise the prefix as written.
type AttrEvent struct {
	Kind   AttrKind
	Attr   AttributeId
	Value  AttributeValue
	Prefix string
	Local  string
	Raw    Span
}

// Event is one token of the top-level SVG document stream. Like the value
// tokenizers, only the fields documented for Kind are meaningful.
type Event struct {
	Kind EventKind

	// EventStartElement
	Elem       ElementId
	Recognized bool // false if Name wasn't a recognized SVG element
	Name       string
	Attrs      []AttrEvent

	// EventEndElement
	EndName string

	// EventText, EventWhitespace
	Text Span

	// EventComment
	Comment Span
}

// EventStream lifts an encoding/xml token stream into SVG-aware events: it
// recognizes element and presentation-attribute names via LookupElementID/
// LookupAttributeID and dispatches each recognized attribute's value through
// AttrValueOf, while passing anything it doesn't recognize straight through.
//
// Unlike the value-grammar tokenizers, EventStream is not zero-allocation:
// encoding/xml already copies and entity-decodes every token it returns, so
// the Spans this type hands out for attribute/text values are backed by
// those per-token copies rather than by the original document buffer. The
// value grammars downstream of AttrValueOf are unaffected: they only
// require a stable string for the lifetime of the call, which a decoded
// xml.Token already provides.
//
// Two document constructs never appear as their own events: the decoder
// reports CDATA sections as ordinary character data (folded into EventText),
// and entity references are either resolved by the decoder or rejected as a
// stream error, so no EntityRef-style event is emitted.
type EventStream struct {
	dec  *xml.Decoder
	log  Logger
	err  *Error
	done bool
}

// NewEventStream returns an EventStream reading from r.
func NewEventStream(r io.Reader, log Logger) *EventStream {
	return &EventStream{dec: xml.NewDecoder(r), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended at
// a clean end of document.
func (e *EventStream) Err() *Error { return e.err }

func (e *EventStream) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		kind := InvalidValue
		pos := Pos{}
		if syn, isSyntax := err.(*xml.SyntaxError); isSyntax {
			pos = Pos{Line: syn.Line, Column: 1}
			if strings.Contains(syn.Msg, "invalid UTF-8") {
				kind = UTF8Error
			}
		}
		svgErr = newErrorf(kind, pos, "%v", err)
	}
	e.err = svgErr
	e.done = true
	warn(e.log, svgErr.Pos, "event stream stopped: %v", svgErr)
}

// Next returns the next document event. ok is false once the document has
// ended, whether cleanly (clean end of input) or because of an error (see
// Err).
func (e *EventStream) Next() (Event, bool) {
	if e.done {
		return Event{}, false
	}

	tok, err := e.dec.Token()
	if err != nil {
		if err == io.EOF {
			e.done = true
			return Event{}, false
		}
		e.fail(err)
		return Event{}, false
	}

	switch t := tok.(type) {
	case xml.StartElement:
		return e.buildStartElement(t), true
	case xml.EndElement:
		return Event{Kind: EventEndElement, EndName: t.Name.Local}, true
	case xml.CharData:
		text := string(t)
		kind := EventWhitespace
		for i := 0; i < len(text); i++ {
			if !isSVGSpace(text[i]) {
				kind = EventText
				break
			}
		}
		return Event{Kind: kind, Text: NewSpan(text, 0, len(text))}, true
	case xml.Comment:
		text := string(t)
		return Event{Kind: EventComment, Comment: NewSpan(text, 0, len(text))}, true
	default:
		// Directives and processing instructions carry no SVG-relevant
		// content; skip silently to the next token.
		return e.Next()
	}
}

func (e *EventStream) buildStartElement(t xml.StartElement) Event {
	elemID, recognized := LookupElementID(t.Name.Local)

	ev := Event{
		Kind:       EventStartElement,
		Elem:       elemID,
		Recognized: recognized,
		Name:       t.Name.Local,
	}

	for _, a := range t.Attr {
		ev.Attrs = append(ev.Attrs, e.buildAttr(elemID, recognized, a))
	}
	return ev
}

func (e *EventStream) buildAttr(elem ElementId, elemRecognized bool, a xml.Attr) AttrEvent {
	value := a.Value
	span := NewSpan(value, 0, len(value))

	if !elemRecognized || a.Name.Space != "" {
		return AttrEvent{Kind: XmlAttribute, Prefix: a.Name.Space, Local: a.Name.Local, Raw: span}
	}

	attrID, ok := LookupAttributeID("", a.Name.Local)
	if !ok {
		return AttrEvent{Kind: XmlAttribute, Local: a.Name.Local, Raw: span}
	}

	av, err := AttrValueOf(elem, attrID, span)
	if err != nil {
		warn(e.log, err.(*Error).Pos, "attribute %q on %q: %v", a.Name.Local, elem, err)
		return AttrEvent{Kind: XmlAttribute, Local: a.Name.Local, Raw: span}
	}

	return AttrEvent{Kind: SvgAttribute, Attr: attrID, Value: av, Local: a.Name.Local, Raw: span}
}

// String renders an ElementId as its element name for diagnostic messages.
func (e ElementId) String() string {
	for name, id := range elementNames {
		if id == e {
			return name
		}
	}
	return fmt.Sprintf("ElementId(%d)", int(e))
}
