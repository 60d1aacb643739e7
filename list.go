package svgvalue

// NumberListTokenizer is a pull iterator over a whitespace/comma-separated
// <number> list, the grammar behind `rotate` on <text>/<tspan>.
type NumberListTokenizer struct {
	s       Stream
	log     Logger
	started bool
	done    bool
	err     *Error
}

// NewNumberListTokenizer returns a tokenizer over span's number-list data.
// log may be nil.
func NewNumberListTokenizer(span Span, log Logger) *NumberListTokenizer {
	return &NumberListTokenizer{s: NewStream(span), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly.
func (t *NumberListTokenizer) Err() *Error { return t.err }

func (t *NumberListTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidNumber, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "number list tokenizer stopped: %v", svgErr)
}

// Next returns the next number in the list. ok is false once the list has
// ended, whether cleanly or because of a grammar error (see Err).
func (t *NumberListTokenizer) Next() (float64, bool) {
	if t.done {
		return 0, false
	}

	if t.started {
		if err := t.s.ParseListSeparator(); err != nil {
			t.fail(err)
			return 0, false
		}
	} else {
		t.s.SkipSpaces()
	}
	t.started = true

	if t.s.AtEnd() {
		t.done = true
		return 0, false
	}

	n, err := t.s.ParseNumber()
	if err != nil {
		t.fail(err)
		return 0, false
	}
	return n, true
}

// LengthListTokenizer is a pull iterator over a whitespace/comma-separated
// <length> list, the grammar behind `stroke-dasharray` and the
// `x`/`y`/`dx`/`dy` attributes of <text>/<tspan> when they carry one value
// per character.
type LengthListTokenizer struct {
	s       Stream
	log     Logger
	started bool
	done    bool
	err     *Error
}

// NewLengthListTokenizer returns a tokenizer over span's length-list data.
// log may be nil.
func NewLengthListTokenizer(span Span, log Logger) *LengthListTokenizer {
	return &LengthListTokenizer{s: NewStream(span), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly.
func (t *LengthListTokenizer) Err() *Error { return t.err }

func (t *LengthListTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidLength, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "length list tokenizer stopped: %v", svgErr)
}

// Next returns the next length in the list. ok is false once the list has
// ended, whether cleanly or because of a grammar error (see Err).
func (t *LengthListTokenizer) Next() (Length, bool) {
	if t.done {
		return Length{}, false
	}

	if t.started {
		if err := t.s.ParseListSeparator(); err != nil {
			t.fail(err)
			return Length{}, false
		}
	} else {
		t.s.SkipSpaces()
	}
	t.started = true

	if t.s.AtEnd() {
		t.done = true
		return Length{}, false
	}

	n, err := t.s.ParseLength()
	if err != nil {
		t.fail(err)
		return Length{}, false
	}
	return n, true
}
