package svgvalue

// AttrValueKind identifies which grammar an AttributeValue was parsed
// against.
type AttrValueKind int

const (
	AVPath AttrValueKind = iota
	AVTransform
	AVStyle
	AVPoints
	AVViewBox
	AVAspectRatio
	AVPaint
	AVColor
	AVIRI
	AVNumber
	AVNumberList
	AVLength
	AVLengthList
	AVPredef
	AVString
)

// AttributeValue is the result of dispatching a raw attribute value through
// AttrValueOf. Only the field(s) documented for Kind are meaningful; the
// lazy grammars (path, transform, style, points, number/length lists) are
// not eagerly materialized here; Raw is handed back so the caller builds
// the matching tokenizer over it, keeping this dispatch step itself
// allocation-free.
type AttributeValue struct {
	Kind AttrValueKind
	Raw  Span

	Number      float64
	Length      Length
	Color       Color
	Paint       PaintValue
	IRI         IRI
	ViewBox     ViewBox
	AspectRatio AspectRatio
	Predef      ValueId
}

// PathTokenizer builds a PathTokenizer over an AVPath value's raw span.
func (v AttributeValue) PathTokenizer(log Logger) *PathTokenizer {
	return NewPathTokenizer(v.Raw, log)
}

// TransformTokenizer builds a TransformTokenizer over an AVTransform
// value's raw span.
func (v AttributeValue) TransformTokenizer(log Logger) *TransformTokenizer {
	return NewTransformTokenizer(v.Raw, log)
}

// StyleTokenizer builds a StyleTokenizer over an AVStyle value's raw span.
func (v AttributeValue) StyleTokenizer(log Logger) *StyleTokenizer {
	return NewStyleTokenizer(v.Raw, log)
}

// PointsTokenizer builds a PointsTokenizer over an AVPoints value's raw
// span.
func (v AttributeValue) PointsTokenizer(log Logger) *PointsTokenizer {
	return NewPointsTokenizer(v.Raw, log)
}

// NumberListTokenizer builds a NumberListTokenizer over an AVNumberList
// value's raw span.
func (v AttributeValue) NumberListTokenizer(log Logger) *NumberListTokenizer {
	return NewNumberListTokenizer(v.Raw, log)
}

// LengthListTokenizer builds a LengthListTokenizer over an AVLengthList
// value's raw span.
func (v AttributeValue) LengthListTokenizer(log Logger) *LengthListTokenizer {
	return NewLengthListTokenizer(v.Raw, log)
}

// attrGrammar classifies an attribute by which grammar its value follows,
// independent of the specific keyword sets a few attributes additionally
// accept (handled separately in AttrValueOf).
type attrGrammar int

const (
	grammarPath attrGrammar = iota
	grammarTransform
	grammarStyle
	grammarPoints
	grammarViewBox
	grammarAspectRatio
	grammarPaint
	grammarColor
	grammarIRI
	grammarNumber
	grammarLength
	grammarLengthList
	grammarString
)

var attrGrammars = map[AttributeId]attrGrammar{
	AttrD:                   grammarPath,
	AttrTransform:           grammarTransform,
	AttrGradientTransform:   grammarTransform,
	AttrPatternTransform:    grammarTransform,
	AttrStyle:               grammarStyle,
	AttrPoints:              grammarPoints,
	AttrViewBox:             grammarViewBox,
	AttrPreserveAspectRatio: grammarAspectRatio,
	AttrFill:                grammarPaint,
	AttrStroke:              grammarPaint,
	AttrColor:               grammarPaint,
	AttrStopColor:           grammarPaint,
	AttrFloodColor:          grammarPaint,
	AttrLightingColor:       grammarPaint,
	AttrClipPath:            grammarIRI,
	AttrMask:                grammarIRI,
	AttrFilter:              grammarIRI,
	AttrMarkerStart:         grammarIRI,
	AttrMarkerMid:           grammarIRI,
	AttrMarkerEnd:           grammarIRI,
	AttrHref:                grammarIRI,

	AttrOpacity:          grammarNumber,
	AttrFillOpacity:      grammarNumber,
	AttrStrokeOpacity:    grammarNumber,
	AttrStopOpacity:      grammarNumber,
	AttrFloodOpacity:     grammarNumber,
	AttrStrokeMiterlimit: grammarNumber,
	AttrPathLength:       grammarNumber,
	AttrRotate:           grammarNumber,

	AttrStrokeDasharray: grammarLengthList,

	AttrX:                grammarLength,
	AttrY:                grammarLength,
	AttrWidth:            grammarLength,
	AttrHeight:           grammarLength,
	AttrRx:               grammarLength,
	AttrRy:               grammarLength,
	AttrCx:               grammarLength,
	AttrCy:               grammarLength,
	AttrR:                grammarLength,
	AttrX1:               grammarLength,
	AttrY1:               grammarLength,
	AttrX2:               grammarLength,
	AttrY2:               grammarLength,
	AttrStrokeWidth:      grammarLength,
	AttrStrokeDashoffset: grammarLength,
	AttrFontSize:         grammarLength,
	AttrTextLength:       grammarLength,
	AttrRefX:             grammarLength,
	AttrRefY:             grammarLength,
	AttrDx:               grammarLength,
	AttrDy:               grammarLength,
	AttrMarkerWidth:      grammarLength,
	AttrMarkerHeight:     grammarLength,
	AttrStartOffset:      grammarLength,
	AttrLetterSpacing:    grammarLength,
	AttrWordSpacing:      grammarLength,
	AttrOffset:           grammarLength,

	AttrFontFamily: grammarString,
	AttrID:         grammarString,
}

// isTextListContext reports whether x/y/dx/dy/rotate take a per-character
// number/length list on this element; everywhere outside <text>/<tspan>
// those same attribute names take a single scalar value.
func isTextListContext(elem ElementId) bool {
	return elem == ElemText || elem == ElemTSpan
}

// AttrValueOf dispatches a raw attribute value to its grammar, given the
// element and attribute it was found on. The order of attempt is: the
// attribute's specific closed keyword set (if any) and the shared generic
// keyword set, then the attribute's typed grammar, with a plain String as
// the final fallback for attributes this table doesn't otherwise know.
func AttrValueOf(elem ElementId, attr AttributeId, value Span) (AttributeValue, error) {
	if pv, ok := tryPredefValue(elem, attr, value); ok {
		return pv, nil
	}

	grammar, known := attrGrammars[attr]
	if !known {
		return AttributeValue{Kind: AVString, Raw: value}, nil
	}

	switch grammar {
	case grammarPath:
		return AttributeValue{Kind: AVPath, Raw: value}, nil
	case grammarTransform:
		return AttributeValue{Kind: AVTransform, Raw: value}, nil
	case grammarStyle:
		return AttributeValue{Kind: AVStyle, Raw: value}, nil
	case grammarPoints:
		return AttributeValue{Kind: AVPoints, Raw: value}, nil
	case grammarViewBox:
		vb, err := ParseViewBox(value)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVViewBox, Raw: value, ViewBox: vb}, nil
	case grammarAspectRatio:
		ar, err := ParseAspectRatio(value)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVAspectRatio, Raw: value, AspectRatio: ar}, nil
	case grammarPaint:
		p, err := ParsePaint(value)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVPaint, Raw: value, Paint: p}, nil
	case grammarColor:
		c, err := ParseColor(value)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVColor, Raw: value, Color: c}, nil
	case grammarIRI:
		iri, err := ParseIRI(value)
		if err != nil {
			return AttributeValue{}, err
		}
		return AttributeValue{Kind: AVIRI, Raw: value, IRI: iri}, nil
	case grammarNumber:
		return dispatchNumberOrList(elem, attr, value, false)
	case grammarLength:
		return dispatchNumberOrList(elem, attr, value, true)
	case grammarLengthList:
		return AttributeValue{Kind: AVLengthList, Raw: value}, nil
	default:
		return AttributeValue{Kind: AVString, Raw: value}, nil
	}
}

// dispatchNumberOrList resolves the text-element list exception for
// x/y/dx/dy/rotate before falling back to a plain Number/Length.
func dispatchNumberOrList(elem ElementId, attr AttributeId, value Span, isLength bool) (AttributeValue, error) {
	if isTextListContext(elem) {
		switch attr {
		case AttrX, AttrY, AttrDx, AttrDy:
			return AttributeValue{Kind: AVLengthList, Raw: value}, nil
		case AttrRotate:
			return AttributeValue{Kind: AVNumberList, Raw: value}, nil
		}
	}

	if isLength {
		s := NewStream(value)
		s.SkipSpaces()
		l, err := s.ParseLength()
		if err != nil {
			return AttributeValue{}, err
		}
		s.SkipSpaces()
		if !s.AtEnd() {
			return AttributeValue{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data")
		}
		return AttributeValue{Kind: AVLength, Raw: value, Length: l}, nil
	}

	s := NewStream(value)
	s.SkipSpaces()
	n, err := s.ParseNumber()
	if err != nil {
		return AttributeValue{}, err
	}
	s.SkipSpaces()
	if !s.AtEnd() {
		return AttributeValue{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data")
	}
	return AttributeValue{Kind: AVNumber, Raw: value, Number: n}, nil
}

// tryPredefValue checks, in order, font-weight's numeric keywords,
// font-size's keywords, the attribute-specific closed sets, and finally the
// shared generic keyword set, returning an AVPredef value on the first
// match. font-weight's "100".."900" come back as a predefined value rather
// than a Number, and a bare "inherit" on font-family wins over its usual
// String grammar.
func tryPredefValue(elem ElementId, attr AttributeId, value Span) (AttributeValue, bool) {
	text := value.Str()

	switch attr {
	case AttrFontWeight:
		if id, ok := LookupFontWeightValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrFontSize:
		if id, ok := LookupFontSizeValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrFillRule, AttrClipRule:
		if id, ok := LookupFillRuleValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrStrokeLinecap:
		if id, ok := LookupStrokeLinecapValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrStrokeLinejoin:
		if id, ok := LookupStrokeLinejoinValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrTextAnchor:
		if id, ok := LookupTextAnchorValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrGradientUnits, AttrPatternUnits, AttrPatternContentUnits:
		if id, ok := LookupUnitsValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrMarkerUnits:
		if id, ok := LookupMarkerUnitsValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrSpreadMethod:
		if id, ok := LookupSpreadMethodValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrLengthAdjust:
		if id, ok := LookupLengthAdjustValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrMethod:
		if id, ok := LookupTextPathMethodValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrSide:
		if id, ok := LookupTextPathSideValueID(text); ok {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
		}
	case AttrFontFamily:
		if text == "inherit" {
			return AttributeValue{Kind: AVPredef, Raw: value, Predef: ValInherit}, true
		}
		return AttributeValue{}, false
	}

	// Paint attributes have their own encoding for "none"/"inherit"/
	// "currentColor" (a PaintValue, not a PredefValue), and the structured
	// grammars (path, transform, style, points, viewBox,
	// preserveAspectRatio, href) always go to their own parser; none of
	// them is shadowed by the generic keyword set here. The other IRI
	// attributes (clip-path, mask, filter, marker-*) do consult it, so their
	// "none"/"inherit" come back as a PredefValue.
	switch attr {
	case AttrFill, AttrStroke, AttrColor, AttrStopColor, AttrFloodColor, AttrLightingColor,
		AttrD, AttrTransform, AttrGradientTransform, AttrPatternTransform,
		AttrStyle, AttrPoints, AttrViewBox, AttrPreserveAspectRatio,
		AttrHref:
		return AttributeValue{}, false
	}

	if id, ok := LookupValueID(text); ok {
		return AttributeValue{Kind: AVPredef, Raw: value, Predef: id}, true
	}
	return AttributeValue{}, false
}
