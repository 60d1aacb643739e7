package svgvalue

// IRI is a parsed SVG IRI reference: either a bare `#id` fragment or a
// `url(#id)`/`url("#id")` functional reference. Fragment holds the id
// without its leading '#'.
type IRI struct {
	Fragment Span
}

// ParseIRI parses span as an IRI reference, accepting both the bare
// `#fragment` form used directly in attributes like `xlink:href`, and the
// `url(...)` form used inside `fill`/`stroke`/`clip-path`-style paint and
// reference values.
func ParseIRI(span Span) (IRI, error) {
	s := NewStream(span)
	s.SkipSpaces()

	if consumeKeywordLiteral(&s, "url") {
		s.SkipSpaces()
		if err := s.ConsumeByte('('); err != nil {
			return IRI{}, err
		}
		s.SkipSpaces()

		quote := byte(0)
		if b, ok := s.curByte(); ok && (b == '"' || b == '\'') {
			quote = b
			s.pos++
		}

		if err := s.ConsumeByte('#'); err != nil {
			return IRI{}, err
		}
		frag, err := s.ConsumeIdent()
		if err != nil {
			return IRI{}, err
		}

		if quote != 0 {
			if err := s.ConsumeByte(quote); err != nil {
				return IRI{}, err
			}
		}
		s.SkipSpaces()
		if err := s.ConsumeByte(')'); err != nil {
			return IRI{}, err
		}

		s.SkipSpaces()
		if !s.AtEnd() {
			return IRI{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data after url(...)")
		}
		return IRI{Fragment: frag}, nil
	}

	if err := s.ConsumeByte('#'); err != nil {
		return IRI{}, newErrorf(InvalidValue, s.GenTextPos(), "expected '#' or \"url(\"")
	}
	frag, err := s.ConsumeIdent()
	if err != nil {
		return IRI{}, err
	}
	s.SkipSpaces()
	if !s.AtEnd() {
		return IRI{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data after #id")
	}
	return IRI{Fragment: frag}, nil
}
