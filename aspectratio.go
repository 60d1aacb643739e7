package svgvalue

// Align identifies the alignment keyword of a preserveAspectRatio value.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignKeywords = []struct {
	name  string
	align Align
}{
	{"none", AlignNone},
	{"xMinYMin", AlignXMinYMin},
	{"xMidYMin", AlignXMidYMin},
	{"xMaxYMin", AlignXMaxYMin},
	{"xMinYMid", AlignXMinYMid},
	{"xMidYMid", AlignXMidYMid},
	{"xMaxYMid", AlignXMaxYMid},
	{"xMinYMax", AlignXMinYMax},
	{"xMidYMax", AlignXMidYMax},
	{"xMaxYMax", AlignXMaxYMax},
}

// MeetOrSlice is the second, optional keyword of a preserveAspectRatio
// value, meaningless when Align is AlignNone.
type MeetOrSlice int

const (
	Meet MeetOrSlice = iota
	Slice
)

// AspectRatio is the parsed `preserveAspectRatio="..."` attribute: an
// optional leading `defer`, an alignment keyword, and an optional
// `meet`/`slice` (defaulting to Meet). A meet/slice keyword is only legal
// when the alignment is not "none".
type AspectRatio struct {
	Defer       bool
	Align       Align
	MeetOrSlice MeetOrSlice
}

// ParseAspectRatio parses span as a preserveAspectRatio attribute value.
func ParseAspectRatio(span Span) (AspectRatio, error) {
	s := NewStream(span)
	s.SkipSpaces()

	var result AspectRatio

	if ok := consumeKeywordLiteral(&s, "defer"); ok {
		result.Defer = true
		s.SkipSpaces()
	}

	ident, err := s.ConsumeIdent()
	if err != nil {
		return AspectRatio{}, newErrorf(InvalidValue, s.GenTextPos(), "expected an alignment keyword")
	}
	name := ident.Str()

	align, ok := lookupAlign(name)
	if !ok {
		return AspectRatio{}, newErrorf(InvalidValue, s.GenTextPos(), "unknown preserveAspectRatio alignment %q", name)
	}
	result.Align = align

	s.SkipSpaces()
	if align != AlignNone && !s.AtEnd() {
		start := s.pos
		ident2, err := s.ConsumeIdent()
		if err != nil {
			return AspectRatio{}, err
		}
		switch ident2.Str() {
		case "meet":
			result.MeetOrSlice = Meet
		case "slice":
			result.MeetOrSlice = Slice
		default:
			s.pos = start
			return AspectRatio{}, newErrorf(InvalidValue, s.GenTextPos(), "expected 'meet' or 'slice', found %q", ident2.Str())
		}
	}

	s.SkipSpaces()
	if !s.AtEnd() {
		return AspectRatio{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data in preserveAspectRatio")
	}

	return result, nil
}

func lookupAlign(name string) (Align, bool) {
	for _, kw := range alignKeywords {
		if kw.name == name {
			return kw.align, true
		}
	}
	return 0, false
}

// consumeKeywordLiteral consumes exactly kw if it appears at the cursor,
// followed by a word boundary (end of input or a non-ident byte), without
// allocating.
func consumeKeywordLiteral(s *Stream, kw string) bool {
	remaining := s.span.parent[s.pos:s.span.end]
	if len(remaining) < len(kw) || remaining[:len(kw)] != kw {
		return false
	}
	if len(remaining) > len(kw) && isIdentByte(remaining[len(kw)]) {
		return false
	}
	s.pos += len(kw)
	return true
}
