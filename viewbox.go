package svgvalue

// ViewBox is the parsed `viewBox="minX minY width height"` attribute.
// Width and height must be non-negative; a negative value is a grammar
// error rather than being silently clamped, since only the document layer
// above this package knows whether to drop the attribute or fail the
// document.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ParseViewBox parses span as a viewBox attribute value: four comma/
// whitespace-separated numbers.
func ParseViewBox(span Span) (ViewBox, error) {
	s := NewStream(span)
	s.SkipSpaces()

	minX, err := s.ParseNumber()
	if err != nil {
		return ViewBox{}, err
	}
	if err := s.ParseListSeparator(); err != nil {
		return ViewBox{}, err
	}
	minY, err := s.ParseNumber()
	if err != nil {
		return ViewBox{}, err
	}
	if err := s.ParseListSeparator(); err != nil {
		return ViewBox{}, err
	}
	width, err := s.ParseNumber()
	if err != nil {
		return ViewBox{}, err
	}
	if width < 0 {
		return ViewBox{}, newErrorf(InvalidValue, s.GenTextPos(), "viewBox width must be non-negative, got %v", width)
	}
	if err := s.ParseListSeparator(); err != nil {
		return ViewBox{}, err
	}
	height, err := s.ParseNumber()
	if err != nil {
		return ViewBox{}, err
	}
	if height < 0 {
		return ViewBox{}, newErrorf(InvalidValue, s.GenTextPos(), "viewBox height must be non-negative, got %v", height)
	}

	s.SkipSpaces()
	if !s.AtEnd() {
		return ViewBox{}, newErrorf(InvalidValue, s.GenTextPos(), "unexpected trailing data in viewBox")
	}

	return ViewBox{MinX: minX, MinY: minY, Width: width, Height: height}, nil
}
