package svgvalue

import "strconv"

// Stream is a forward-only cursor over a Span. It is the shared cursor type
// every value lexer in this package is built on: all of them hold nothing
// but a Stream.
//
// A Stream only ever advances, except that SetPos may rewind to any
// position the cursor has already visited (used by lexers that need to
// re-read a short lookahead, e.g. the style tokenizer backing up after a
// namespace-prefix lookahead that did not match).
type Stream struct {
	span Span
	pos  int // absolute offset into span.parent; span.start <= pos <= span.end
}

// NewStream returns a Stream positioned at the start of span.
func NewStream(span Span) Stream {
	return Stream{span: span, pos: span.start}
}

// Span returns the Span this Stream is reading over.
func (s *Stream) Span() Span { return s.span }

// AtEnd reports whether the cursor has reached the end of its Span.
func (s *Stream) AtEnd() bool { return s.pos >= s.span.end }

// Pos returns the cursor's current offset, relative to the start of the
// Stream's Span.
func (s *Stream) Pos() int { return s.pos - s.span.start }

// SetPos moves the cursor to an offset relative to the start of the
// Stream's Span. It is the caller's responsibility to only rewind to a
// position it has already observed; SetPos itself only enforces that the
// target lies within the Span.
func (s *Stream) SetPos(p int) error {
	target := s.span.start + p
	if p < 0 || target > s.span.end {
		return newErrorf(InvalidAdvance, s.GenTextPos(), "set_pos(%d) out of range [0, %d]", p, s.span.Len())
	}
	s.pos = target
	return nil
}

// GenTextPos computes the 1-based line and column of the cursor's current
// position by counting line terminators from the start of the Span. The
// position is not maintained incrementally; it is only computed when an
// error needs one.
func (s *Stream) GenTextPos() Pos {
	line, col := 1, 1
	for i := s.span.start; i < s.pos; i++ {
		if s.span.parent[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Pos{Offset: s.Pos(), Line: line, Column: col}
}

func (s *Stream) curByte() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.span.parent[s.pos], true
}

func (s *Stream) byteAt(offset int) (byte, bool) {
	p := s.pos + offset
	if p < s.span.start || p >= s.span.end {
		return 0, false
	}
	return s.span.parent[p], true
}

// advance moves the cursor forward by n bytes; n must not overrun the Span.
func (s *Stream) advance(n int) error {
	if s.pos+n > s.span.end {
		return newErrorf(InvalidAdvance, s.GenTextPos(), "requested advance of %d, only %d remaining", n, s.span.end-s.pos)
	}
	s.pos += n
	return nil
}

func isSVGSpace(b byte) bool {
	switch b {
	case 0x20, 0x09, 0x0D, 0x0A:
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b)
}

// SkipSpaces consumes zero or more of \x20 \x09 \x0D \x0A.
func (s *Stream) SkipSpaces() {
	for {
		b, ok := s.curByte()
		if !ok || !isSVGSpace(b) {
			return
		}
		s.pos++
	}
}

// ConsumeByte requires the current byte to equal b, consuming it on
// success.
func (s *Stream) ConsumeByte(b byte) error {
	cur, ok := s.curByte()
	if !ok {
		return newError(UnexpectedEndOfStream, s.GenTextPos())
	}
	if cur != b {
		return &Error{Kind: InvalidChar, Pos: s.GenTextPos(), Expected: b, Found: cur}
	}
	s.pos++
	return nil
}

// ConsumeEither requires the current byte to be one of set, returning which
// byte matched.
func (s *Stream) ConsumeEither(set string) (byte, error) {
	cur, ok := s.curByte()
	if !ok {
		return 0, newError(UnexpectedEndOfStream, s.GenTextPos())
	}
	for i := 0; i < len(set); i++ {
		if set[i] == cur {
			s.pos++
			return cur, nil
		}
	}
	return 0, &Error{Kind: InvalidChar, Pos: s.GenTextPos(), Expected: set[0], Found: cur}
}

// ConsumeIdent consumes a maximal run of ASCII letters, digits, '-' and '_'
// and returns it as a Span. At least one byte must match.
func (s *Stream) ConsumeIdent() (Span, error) {
	start := s.pos
	for {
		b, ok := s.curByte()
		if !ok || !isIdentByte(b) {
			break
		}
		s.pos++
	}
	if s.pos == start {
		return Span{}, newError(InvalidChar, s.GenTextPos())
	}
	return Span{parent: s.span.parent, start: start, end: s.pos}, nil
}

// ParseInteger parses an optionally-signed run of decimal digits into an
// int32. Overflow is reported as InvalidNumber, as is the absence of any
// digit.
func (s *Stream) ParseInteger() (int32, error) {
	start := s.pos
	if b, ok := s.curByte(); ok && (b == '+' || b == '-') {
		s.pos++
	}

	digitsStart := s.pos
	for {
		b, ok := s.curByte()
		if !ok || !isDigit(b) {
			break
		}
		s.pos++
	}
	if s.pos == digitsStart {
		s.pos = start
		return 0, newError(InvalidNumber, s.GenTextPos())
	}

	text := s.span.parent[start:s.pos]
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		pos := s.GenTextPos()
		s.pos = start
		return 0, newErrorf(InvalidNumber, pos, "integer overflow: %q", text)
	}
	return int32(n), nil
}

// ParseNumber parses the SVG <number> grammar: an optional sign, an integer
// part and/or a fractional part (at least one digit total; a bare '.' is
// an error), and an optional exponent. The final float conversion is
// delegated to strconv; this routine's job is only to delimit the slice.
func (s *Stream) ParseNumber() (float64, error) {
	start := s.pos

	if b, ok := s.curByte(); ok && (b == '+' || b == '-') {
		s.pos++
	}

	sawDigit := false
	for {
		b, ok := s.curByte()
		if !ok || !isDigit(b) {
			break
		}
		s.pos++
		sawDigit = true
	}

	if b, ok := s.curByte(); ok && b == '.' {
		s.pos++
		for {
			b, ok := s.curByte()
			if !ok || !isDigit(b) {
				break
			}
			s.pos++
			sawDigit = true
		}
	}

	if !sawDigit {
		s.pos = start
		return 0, newError(InvalidNumber, s.GenTextPos())
	}

	if b, ok := s.curByte(); ok && (b == 'e' || b == 'E') {
		expStart := s.pos
		s.pos++
		if b, ok := s.curByte(); ok && (b == '+' || b == '-') {
			s.pos++
		}
		expDigitsStart := s.pos
		for {
			b, ok := s.curByte()
			if !ok || !isDigit(b) {
				break
			}
			s.pos++
		}
		if s.pos == expDigitsStart {
			// No digits after 'e'. An "em"/"ex" unit suffix is not an
			// exponent, so back off to just before the 'e'; anything else
			// is an exponent with no digits.
			if next, ok := s.byteAt(expStart + 1 - s.pos); ok && (next == 'm' || next == 'x') {
				s.pos = expStart
			} else {
				s.pos = start
				return 0, newErrorf(InvalidNumber, s.GenTextPos(), "exponent has no digits")
			}
		}
	}

	text := s.span.parent[start:s.pos]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		pos := s.GenTextPos()
		s.pos = start
		return 0, newErrorf(InvalidNumber, pos, "invalid number %q", text)
	}
	return f, nil
}

// ParseListSeparator consumes zero or more of " \t\n\r,", with at most one
// comma. A second comma within one separator region is an error.
func (s *Stream) ParseListSeparator() error {
	s.SkipSpaces()

	commas := 0
	for {
		b, ok := s.curByte()
		if !ok || b != ',' {
			break
		}
		commas++
		if commas > 1 {
			return newError(InvalidChar, s.GenTextPos())
		}
		s.pos++
		s.SkipSpaces()
	}
	return nil
}

// ParseLength parses a <number> followed by an optional unit suffix from
// the closed SVG set; '%' maps to UnitPercent.
func (s *Stream) ParseLength() (Length, error) {
	n, err := s.ParseNumber()
	if err != nil {
		return Length{}, err
	}

	unit, ok := s.consumeLengthUnit()
	if !ok {
		return Length{Value: n, Unit: UnitNone}, nil
	}
	return Length{Value: n, Unit: unit}, nil
}

var lengthUnitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"%", UnitPercent},
	{"em", UnitEm},
	{"ex", UnitEx},
	{"px", UnitPx},
	{"in", UnitIn},
	{"cm", UnitCm},
	{"mm", UnitMm},
	{"pt", UnitPt},
	{"pc", UnitPc},
}

func (s *Stream) consumeLengthUnit() (Unit, bool) {
	remaining := s.span.parent[s.pos:s.span.end]
	for _, candidate := range lengthUnitSuffixes {
		if len(remaining) >= len(candidate.suffix) && remaining[:len(candidate.suffix)] == candidate.suffix {
			s.pos += len(candidate.suffix)
			return candidate.unit, true
		}
	}
	return UnitNone, false
}
