package svgvalue

// StyleEventKind distinguishes the three things a StyleTokenizer can yield
// from a `style="..."` attribute: a plain CSS declaration, a vendor/namespace
// -prefixed declaration, and a bare entity reference left unresolved by the
// XML layer.
type StyleEventKind int

const (
	StyleDeclaration StyleEventKind = iota
	StylePrefixedDeclaration
	StyleEntityRef
)

// StyleToken is one event from a style attribute's declaration list.
//
// For StyleDeclaration, Attr identifies the property and Value is its raw
// text. For StylePrefixedDeclaration, Attr is zero and Prefix/Local/Value
// carry the parts of "prefix:local:value", with Prefix empty for an
// unprefixed property name the id table doesn't know. For StyleEntityRef,
// Ref is the entity name with no surrounding "&"/";" .
type StyleToken struct {
	Kind   StyleEventKind
	Attr   AttributeId
	Prefix Span
	Local  Span
	Value  Span
	Ref    Span
}

// StyleTokenizer is a pull iterator over the value of a `style="..."`
// attribute: a CSS-like `;`-separated declaration list, tolerant of
// `/* ... */` comments and of `&name;` entity references left over from an
// XML layer that didn't need to resolve them.
type StyleTokenizer struct {
	s    Stream
	log  Logger
	done bool
	err  *Error
}

// NewStyleTokenizer returns a tokenizer over span's style-attribute data.
// log may be nil.
func NewStyleTokenizer(span Span, log Logger) *StyleTokenizer {
	return &StyleTokenizer{s: NewStream(span), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly.
func (t *StyleTokenizer) Err() *Error { return t.err }

func (t *StyleTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidValue, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "style tokenizer stopped: %v", svgErr)
}

// skipCommentsAndSeparators consumes whitespace, ';' separators, and
// "/* ... */" comments, in any order, until it finds the start of the next
// token or the end of input.
func (t *StyleTokenizer) skipCommentsAndSeparators() error {
	for {
		t.s.SkipSpaces()
		b, ok := t.s.curByte()
		if !ok {
			return nil
		}
		if b == ';' {
			t.s.pos++
			continue
		}
		if b == '/' {
			if next, ok := t.s.byteAt(1); ok && next == '*' {
				if err := t.skipComment(); err != nil {
					return err
				}
				continue
			}
		}
		return nil
	}
}

func (t *StyleTokenizer) skipComment() error {
	start := t.s.Pos()
	if err := t.s.advance(2); err != nil { // "/*"
		return err
	}
	for {
		b, ok := t.s.curByte()
		if !ok {
			t.s.SetPos(start)
			return newErrorf(InvalidValue, t.s.GenTextPos(), "unterminated comment")
		}
		if b == '*' {
			if next, ok := t.s.byteAt(1); ok && next == '/' {
				return t.s.advance(2)
			}
		}
		t.s.pos++
	}
}

// Next returns the next declaration, prefixed declaration, or entity
// reference. ok is false once the attribute value has been fully consumed,
// whether cleanly or because of a grammar error (see Err).
func (t *StyleTokenizer) Next() (StyleToken, bool) {
	if t.done {
		return StyleToken{}, false
	}

	if err := t.skipCommentsAndSeparators(); err != nil {
		t.fail(err)
		return StyleToken{}, false
	}
	if t.s.AtEnd() {
		t.done = true
		return StyleToken{}, false
	}

	if b, _ := t.s.curByte(); b == '&' {
		return t.readEntityRef()
	}

	return t.readDeclaration()
}

func (t *StyleTokenizer) readEntityRef() (StyleToken, bool) {
	t.s.pos++ // '&'
	ref, err := t.s.ConsumeIdent()
	if err != nil {
		t.fail(err)
		return StyleToken{}, false
	}
	if err := t.s.ConsumeByte(';'); err != nil {
		t.fail(err)
		return StyleToken{}, false
	}
	return StyleToken{Kind: StyleEntityRef, Ref: ref}, true
}

func (t *StyleTokenizer) readDeclaration() (StyleToken, bool) {
	name, err := t.s.ConsumeIdent()
	if err != nil {
		t.fail(err)
		return StyleToken{}, false
	}

	t.s.SkipSpaces()
	if err := t.s.ConsumeByte(':'); err != nil {
		t.fail(err)
		return StyleToken{}, false
	}
	t.s.SkipSpaces()

	// A second ident followed by another ':' means the first ident was a
	// namespace prefix: "prefix:local:value". Anything else is a plain
	// "name:value" declaration, so back up and treat what we just read as
	// the start of the value.
	var prefix, local Span
	local = name
	mark := t.s.Pos()
	if b, ok := t.s.curByte(); ok && isIdentByte(b) {
		second, err := t.s.ConsumeIdent()
		if err == nil {
			t.s.SkipSpaces()
			if b, ok := t.s.curByte(); ok && b == ':' {
				t.s.pos++
				t.s.SkipSpaces()
				prefix, local = name, second
			} else {
				t.s.SetPos(mark)
			}
		}
	}

	value, err := t.readValue()
	if err != nil {
		t.fail(err)
		return StyleToken{}, false
	}

	if !prefix.IsEmpty() {
		return StyleToken{Kind: StylePrefixedDeclaration, Prefix: prefix, Local: local, Value: value}, true
	}

	attr, ok := LookupAttributeID("", local.Str())
	if !ok {
		return StyleToken{Kind: StylePrefixedDeclaration, Local: local, Value: value}, true
	}
	return StyleToken{Kind: StyleDeclaration, Attr: attr, Value: value}, true
}

// readValue consumes everything up to (but not including) the next
// unquoted ';', a comment, or the end of input, honoring single- and
// double-quoted substrings so that a ';' inside a quoted string (e.g. a
// font-family list) does not end the declaration early. A trailing comment
// is left in place for skipCommentsAndSeparators to consume.
func (t *StyleTokenizer) readValue() (Span, error) {
	start := t.s.Pos()
	for {
		b, ok := t.s.curByte()
		if !ok || b == ';' {
			break
		}
		if b == '/' {
			if next, ok := t.s.byteAt(1); ok && next == '*' {
				break
			}
		}
		if b == '\'' || b == '"' {
			if err := t.skipQuoted(b); err != nil {
				return Span{}, err
			}
			continue
		}
		t.s.pos++
	}

	end := t.s.Pos()
	for end > start && isSVGSpace(t.s.span.parent[t.s.span.start+end-1]) {
		end--
	}
	return t.s.span.Slice(start, end), nil
}

func (t *StyleTokenizer) skipQuoted(quote byte) error {
	t.s.pos++ // opening quote
	for {
		b, ok := t.s.curByte()
		if !ok {
			return newErrorf(InvalidValue, t.s.GenTextPos(), "unterminated quoted string")
		}
		t.s.pos++
		if b == quote {
			return nil
		}
	}
}
