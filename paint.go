package svgvalue

// PaintKind identifies which alternative of the SVG <paint> grammar a
// PaintValue holds.
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintInherit
	PaintCurrentColor
	PaintColor
	PaintIRI
)

// PaintValue is a parsed `fill`/`stroke`-style paint value. Color is only
// meaningful when Kind is PaintColor. IRIRef is only meaningful when Kind is
// PaintIRI, where it names the referenced paint server (typically a
// gradient or pattern); HasFallback then reports whether a fallback paint
// followed the reference, with FallbackKind/FallbackColor describing it.
type PaintValue struct {
	Kind PaintKind
	// PaintColor
	Color Color
	// PaintIRI
	IRIRef        IRI
	HasFallback   bool
	FallbackKind  PaintKind // PaintNone, PaintCurrentColor or PaintColor
	FallbackColor Color
}

// ParsePaint parses span as an SVG <paint> value: `none`, `inherit`,
// `currentColor`, a <color>, or `url(#id)` optionally followed by a
// fallback (`none` or a <color>).
func ParsePaint(span Span) (PaintValue, error) {
	s := NewStream(span)
	s.SkipSpaces()

	if consumeKeywordLiteral(&s, "none") {
		return PaintValue{Kind: PaintNone}, nil
	}
	if consumeKeywordLiteral(&s, "inherit") {
		return PaintValue{Kind: PaintInherit}, nil
	}
	if consumeKeywordLiteral(&s, "currentColor") {
		return PaintValue{Kind: PaintCurrentColor}, nil
	}

	if hasURLPrefix(&s) {
		urlStart := s.pos
		for {
			b, ok := s.curByte()
			if !ok || isSVGSpace(b) {
				break
			}
			if b == ')' {
				s.pos++
				break
			}
			s.pos++
		}
		iriSpan := s.span.Slice(urlStart-s.span.start, s.pos-s.span.start)
		iri, err := ParseIRI(iriSpan)
		if err != nil {
			return PaintValue{}, err
		}

		result := PaintValue{Kind: PaintIRI, IRIRef: iri}

		s.SkipSpaces()
		if s.AtEnd() {
			return result, nil
		}

		result.HasFallback = true
		if consumeKeywordLiteral(&s, "none") {
			result.FallbackKind = PaintNone
			return result, nil
		}
		if consumeKeywordLiteral(&s, "currentColor") {
			result.FallbackKind = PaintCurrentColor
			return result, nil
		}

		fallbackStart := s.pos
		for {
			_, ok := s.curByte()
			if !ok {
				break
			}
			s.pos++
		}
		c, err := ParseColor(s.span.Slice(fallbackStart-s.span.start, s.pos-s.span.start))
		if err != nil {
			return PaintValue{}, err
		}
		result.FallbackKind = PaintColor
		result.FallbackColor = c
		return result, nil
	}

	colorStart := s.pos
	for {
		_, ok := s.curByte()
		if !ok {
			break
		}
		s.pos++
	}
	c, err := ParseColor(s.span.Slice(colorStart-s.span.start, s.pos-s.span.start))
	if err != nil {
		return PaintValue{}, err
	}
	return PaintValue{Kind: PaintColor, Color: c}, nil
}

// hasURLPrefix peeks for a literal "url(". Unlike the rgb() prefix, url()
// is matched case-sensitively.
func hasURLPrefix(s *Stream) bool {
	remaining := s.span.parent[s.pos:s.span.end]
	return len(remaining) >= 4 && remaining[:4] == "url("
}
