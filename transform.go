package svgvalue

// TransformKind identifies which of the six SVG transform primitives a
// TransformToken carries.
type TransformKind int

const (
	TransformMatrix TransformKind = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
)

var transformKeywords = []struct {
	name string
	kind TransformKind
}{
	{"matrix", TransformMatrix},
	{"translate", TransformTranslate},
	{"scale", TransformScale},
	{"rotate", TransformRotate},
	{"skewX", TransformSkewX},
	{"skewY", TransformSkewY},
}

// TransformToken is one entry of an SVG transform-list, e.g. one of the
// comma/whitespace-separated "translate(10,20)" pieces inside a
// `transform="..."` attribute.
//
// Args holds up to 6 arguments; ArgCount reports how many of them were
// present on the wire. ArgsExpanded applies the short-form defaults.
type TransformToken struct {
	Kind     TransformKind
	Args     [6]float64
	ArgCount int
}

// ArgsExpanded returns the token's arguments with the kind's short-form
// defaults applied, always at the kind's full arity: translate
// (tx,ty), scale (sx,sy), rotate (angle,cx,cy), matrix (a,b,c,d,e,f),
// skewX/skewY (angle).
func (t TransformToken) ArgsExpanded() [6]float64 {
	a := t.Args
	switch t.Kind {
	case TransformTranslate:
		if t.ArgCount < 2 {
			a[1] = 0
		}
	case TransformScale:
		if t.ArgCount < 2 {
			a[1] = a[0]
		}
	case TransformRotate:
		if t.ArgCount < 3 {
			a[1], a[2] = 0, 0
		}
	}
	return a
}

// validArgCount reports whether count is a legal argument count for kind.
// rotate takes exactly 1 or 3 arguments; 2 is not a valid short form.
func validArgCount(kind TransformKind, count int) bool {
	switch kind {
	case TransformMatrix:
		return count == 6
	case TransformTranslate, TransformScale:
		return count == 1 || count == 2
	case TransformRotate:
		return count == 1 || count == 3
	case TransformSkewX, TransformSkewY:
		return count == 1
	default:
		return false
	}
}

// TransformTokenizer is a pull iterator over an SVG transform-list. Like
// PathTokenizer, it never surfaces an error through Next; a grammar
// failure ends iteration and is reported through the optional Logger and
// through Err.
type TransformTokenizer struct {
	s       Stream
	log     Logger
	started bool
	done    bool
	err     *Error
}

// NewTransformTokenizer returns a tokenizer over span's transform-list
// data. log may be nil.
func NewTransformTokenizer(span Span, log Logger) *TransformTokenizer {
	return &TransformTokenizer{s: NewStream(span), log: log}
}

func (k TransformKind) String() string {
	switch k {
	case TransformMatrix:
		return "matrix"
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformSkewX:
		return "skewX"
	case TransformSkewY:
		return "skewY"
	default:
		return "?"
	}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly.
func (t *TransformTokenizer) Err() *Error { return t.err }

func (t *TransformTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidTransform, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "transform tokenizer stopped: %v", svgErr)
}

// Next returns the next transform primitive. ok is false once the list has
// ended, whether cleanly or because of a grammar error (see Err).
func (t *TransformTokenizer) Next() (TransformToken, bool) {
	if t.done {
		return TransformToken{}, false
	}

	if t.started {
		if err := t.s.ParseListSeparator(); err != nil {
			t.fail(err)
			return TransformToken{}, false
		}
	}
	t.started = true

	t.s.SkipSpaces()
	if t.s.AtEnd() {
		t.done = true
		return TransformToken{}, false
	}

	kind, ok := t.consumeKeyword()
	if !ok {
		t.fail(newErrorf(InvalidTransform, t.s.GenTextPos(), "unknown transform keyword"))
		return TransformToken{}, false
	}

	t.s.SkipSpaces()
	if err := t.s.ConsumeByte('('); err != nil {
		t.fail(err)
		return TransformToken{}, false
	}

	var args [6]float64
	count := 0
	t.s.SkipSpaces()
	for {
		b, hasByte := t.s.curByte()
		if hasByte && b == ')' {
			break
		}
		if count == 6 {
			t.fail(newErrorf(InvalidTransform, t.s.GenTextPos(), "too many arguments for %v", kind))
			return TransformToken{}, false
		}
		v, err := t.s.ParseNumber()
		if err != nil {
			t.fail(err)
			return TransformToken{}, false
		}
		args[count] = v
		count++

		if err := t.s.ParseListSeparator(); err != nil {
			t.fail(err)
			return TransformToken{}, false
		}
	}

	if err := t.s.ConsumeByte(')'); err != nil {
		t.fail(err)
		return TransformToken{}, false
	}

	if !validArgCount(kind, count) {
		t.fail(newErrorf(InvalidTransform, t.s.GenTextPos(), "wrong number of arguments for %v: %d", kind, count))
		return TransformToken{}, false
	}

	return TransformToken{Kind: kind, Args: args, ArgCount: count}, true
}

func (t *TransformTokenizer) consumeKeyword() (TransformKind, bool) {
	remaining := t.s.span.parent[t.s.pos:t.s.span.end]
	for _, kw := range transformKeywords {
		if len(remaining) >= len(kw.name) && remaining[:len(kw.name)] == kw.name {
			t.s.pos += len(kw.name)
			return kw.kind, true
		}
	}
	return 0, false
}
