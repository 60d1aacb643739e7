package svgvalue

// PointsTokenizer is a pull iterator over the `points="..."` attribute of
// <polyline> and <polygon>: a whitespace/comma-separated list of numbers,
// taken two at a time. An odd number of coordinates is a grammar error.
type PointsTokenizer struct {
	s       Stream
	log     Logger
	started bool
	done    bool
	err     *Error
}

// NewPointsTokenizer returns a tokenizer over span's points data. log may be
// nil.
func NewPointsTokenizer(span Span, log Logger) *PointsTokenizer {
	return &PointsTokenizer{s: NewStream(span), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly.
func (t *PointsTokenizer) Err() *Error { return t.err }

func (t *PointsTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidValue, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "points tokenizer stopped: %v", svgErr)
}

// Next returns the next (x, y) pair. ok is false once the list has ended,
// whether cleanly or because of a grammar error (see Err), including the
// case of a trailing, unpaired coordinate.
func (t *PointsTokenizer) Next() (Point, bool) {
	if t.done {
		return Point{}, false
	}

	if t.started {
		if err := t.s.ParseListSeparator(); err != nil {
			t.fail(err)
			return Point{}, false
		}
	} else {
		t.s.SkipSpaces()
	}
	t.started = true

	if t.s.AtEnd() {
		t.done = true
		return Point{}, false
	}

	x, err := t.s.ParseNumber()
	if err != nil {
		t.fail(err)
		return Point{}, false
	}
	if err := t.s.ParseListSeparator(); err != nil {
		t.fail(err)
		return Point{}, false
	}
	if t.s.AtEnd() {
		t.fail(newErrorf(InvalidValue, t.s.GenTextPos(), "points list has an odd number of coordinates"))
		return Point{}, false
	}
	y, err := t.s.ParseNumber()
	if err != nil {
		t.fail(err)
		return Point{}, false
	}

	return Point{X: x, Y: y}, true
}
