package svgvalue

import "golang.org/x/image/colornames"

// Color is an SVG <color>: either an RGB triple or the `currentColor`
// keyword, which callers resolve against the cascaded `color` property
// themselves (this package only tokenizes, it never resolves the cascade).
type Color struct {
	R, G, B        uint8
	IsCurrentColor bool
}

// maxColorNameLen bounds the on-stack scratch buffer used to lowercase a
// candidate color name for lookup in colornames.Map, whose keys are all
// lowercase. This is the one transient buffer the value grammars use; it
// never escapes to the heap because its size is fixed and known at compile
// time, and it is never returned to the caller.
const maxColorNameLen = 32

// ParseColor parses span as an SVG <color>: `#RGB`, `#RRGGBB`, `rgb(r,g,b)`
// (each component either 0-255 or a percentage), `currentColor`, or one of
// the 147 SVG/CSS3 named colors.
func ParseColor(span Span) (Color, error) {
	s := NewStream(span)
	s.SkipSpaces()

	b, ok := s.curByte()
	if !ok {
		return Color{}, newError(InvalidColor, s.GenTextPos())
	}

	switch {
	case b == '#':
		return parseHexColor(&s)
	case isRGBFunction(&s):
		return parseRGBFunction(&s)
	default:
		return parseColorName(&s)
	}
}

func isRGBFunction(s *Stream) bool {
	remaining := s.span.parent[s.pos:s.span.end]
	return len(remaining) >= 4 &&
		(remaining[0] == 'r' || remaining[0] == 'R') &&
		(remaining[1] == 'g' || remaining[1] == 'G') &&
		(remaining[2] == 'b' || remaining[2] == 'B') &&
		remaining[3] == '('
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func parseHexColor(s *Stream) (Color, error) {
	if err := s.ConsumeByte('#'); err != nil {
		return Color{}, err
	}

	start := s.pos
	for {
		b, ok := s.curByte()
		if !ok {
			break
		}
		if _, isHex := hexDigit(b); !isHex {
			break
		}
		s.pos++
	}
	digits := s.span.parent[start:s.pos]

	switch len(digits) {
	case 3:
		r, _ := hexDigit(digits[0])
		g, _ := hexDigit(digits[1])
		b, _ := hexDigit(digits[2])
		return Color{R: r*16 + r, G: g*16 + g, B: b*16 + b}, nil
	case 6:
		hi := func(i int) uint8 {
			h, _ := hexDigit(digits[i])
			l, _ := hexDigit(digits[i+1])
			return h*16 + l
		}
		return Color{R: hi(0), G: hi(2), B: hi(4)}, nil
	default:
		return Color{}, newErrorf(InvalidColor, s.GenTextPos(), "expected 3 or 6 hex digits after '#', found %d", len(digits))
	}
}

func parseRGBFunction(s *Stream) (Color, error) {
	s.pos += 4 // "rgb("
	s.SkipSpaces()

	var comps [3]uint8
	for i := 0; i < 3; i++ {
		if i > 0 {
			if err := s.ParseListSeparator(); err != nil {
				return Color{}, err
			}
		}
		v, err := parseColorComponent(s)
		if err != nil {
			return Color{}, newErrorf(InvalidColor, s.GenTextPos(), "rgb() requires three components")
		}
		comps[i] = v
	}

	s.SkipSpaces()
	if err := s.ConsumeByte(')'); err != nil {
		return Color{}, newErrorf(InvalidColor, s.GenTextPos(), "expected ')' after three rgb() components")
	}

	return Color{R: comps[0], G: comps[1], B: comps[2]}, nil
}

// parseColorComponent parses one rgb() component, either an integer 0-255
// (clamped) or a percentage.
func parseColorComponent(s *Stream) (uint8, error) {
	n, err := s.ParseNumber()
	if err != nil {
		return 0, err
	}
	if b, ok := s.curByte(); ok && b == '%' {
		s.pos++
		if n < 0 {
			n = 0
		} else if n > 100 {
			n = 100
		}
		return uint8(n*255/100 + 0.5), nil
	}
	if n < 0 {
		n = 0
	} else if n > 255 {
		n = 255
	}
	return uint8(n), nil
}

func parseColorName(s *Stream) (Color, error) {
	start := s.pos
	for {
		b, ok := s.curByte()
		if !ok || !isIdentByte(b) {
			break
		}
		s.pos++
	}
	name := s.span.parent[start:s.pos]
	if name == "" {
		return Color{}, newError(InvalidColor, s.GenTextPos())
	}

	if name == "currentColor" {
		return Color{IsCurrentColor: true}, nil
	}

	if len(name) > maxColorNameLen {
		return Color{}, newErrorf(InvalidColor, s.GenTextPos(), "unknown color name %q", name)
	}
	var scratch [maxColorNameLen]byte
	lower := scratch[:len(name)]
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}

	c, ok := colornames.Map[string(lower)]
	if !ok {
		return Color{}, newErrorf(InvalidColor, s.GenTextPos(), "unknown color name %q", name)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}
