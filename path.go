package svgvalue

// PathCommand is one SVG path command letter. Uppercase is absolute,
// lowercase is relative.
type PathCommand byte

const (
	PathMoveTo             PathCommand = 'M'
	PathMoveToRel          PathCommand = 'm'
	PathLineTo             PathCommand = 'L'
	PathLineToRel          PathCommand = 'l'
	PathHorizontal         PathCommand = 'H'
	PathHorizontalRel      PathCommand = 'h'
	PathVertical           PathCommand = 'V'
	PathVerticalRel        PathCommand = 'v'
	PathCubic              PathCommand = 'C'
	PathCubicRel           PathCommand = 'c'
	PathSmoothCubic        PathCommand = 'S'
	PathSmoothCubicRel     PathCommand = 's'
	PathQuadratic          PathCommand = 'Q'
	PathQuadraticRel       PathCommand = 'q'
	PathSmoothQuadratic    PathCommand = 'T'
	PathSmoothQuadraticRel PathCommand = 't'
	PathArc                PathCommand = 'A'
	PathArcRel             PathCommand = 'a'
	PathClose              PathCommand = 'Z'
	PathCloseRel           PathCommand = 'z'
)

// PathToken is one path segment. It is modeled as a single struct carrying
// every field any command might need, rather than as per-command Go types,
// so that a caller iterating path data never has to type-switch to get at a
// coordinate.
//
// Field validity by Cmd:
//   - PathClose/PathCloseRel: no fields are meaningful.
//   - PathMoveTo*/PathLineTo*/PathSmoothQuadratic*: X, Y.
//   - PathHorizontal*: X only.
//   - PathVertical*: Y only.
//   - PathCubic*: X1,Y1 (first control point), X2,Y2 (second control
//     point), X,Y (endpoint).
//   - PathSmoothCubic*: X2,Y2 (this segment's own control point), X,Y.
//   - PathQuadratic*: X1,Y1 (control point), X,Y.
//   - PathArc*: Rx, Ry, XAxisRotation, LargeArc, Sweep, X, Y.
type PathToken struct {
	Cmd PathCommand

	X, Y          float64
	X1, Y1        float64
	X2, Y2        float64
	Rx, Ry        float64
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
}

// PathTokenizer is a pull iterator over SVG <path> "d" attribute data. It
// never returns an error from Next: grammar errors are not surfaced as part
// of the token stream. Instead a failure ends iteration early and is
// reported to the optional Logger; Err reports the same failure for
// callers that want it without a Logger.
type PathTokenizer struct {
	s        Stream
	log      Logger
	lastCmd  PathCommand // effective command for implicit repetition
	started  bool
	done     bool
	err      *Error
}

// NewPathTokenizer returns a tokenizer over span's path data. log may be
// nil.
func NewPathTokenizer(span Span, log Logger) *PathTokenizer {
	return &PathTokenizer{s: NewStream(span), log: log}
}

// Err returns the error that ended iteration, or nil if iteration ended
// cleanly (end of input, or the data had no commands at all).
func (t *PathTokenizer) Err() *Error { return t.err }

func isPathCommandLetter(b byte) bool {
	switch PathCommand(b) {
	case PathMoveTo, PathMoveToRel, PathLineTo, PathLineToRel,
		PathHorizontal, PathHorizontalRel, PathVertical, PathVerticalRel,
		PathCubic, PathCubicRel, PathSmoothCubic, PathSmoothCubicRel,
		PathQuadratic, PathQuadraticRel, PathSmoothQuadratic, PathSmoothQuadraticRel,
		PathArc, PathArcRel, PathClose, PathCloseRel:
		return true
	}
	return false
}

func (t *PathTokenizer) fail(err error) {
	svgErr, ok := err.(*Error)
	if !ok {
		svgErr = newErrorf(InvalidPath, t.s.GenTextPos(), "%v", err)
	}
	t.err = svgErr
	t.done = true
	warn(t.log, svgErr.Pos, "path tokenizer stopped: %v", svgErr)
}

// Next returns the next path segment. ok is false once the sequence has
// ended, whether cleanly or because of a grammar error (see Err).
func (t *PathTokenizer) Next() (tok PathToken, ok bool) {
	if t.done {
		return PathToken{}, false
	}

	if !t.started {
		t.started = true
		t.s.SkipSpaces()
		b, hasByte := t.s.curByte()
		if !hasByte || (b != byte(PathMoveTo) && b != byte(PathMoveToRel)) {
			// A path must start with M/m; anything else ends the sequence
			// with nothing emitted.
			t.done = true
			if hasByte {
				t.fail(newErrorf(InvalidPath, t.s.GenTextPos(), "path data must start with 'M' or 'm', found %q", b))
			}
			return PathToken{}, false
		}
		t.s.pos++ // consume the command letter
		t.lastCmd = PathCommand(b)
		return t.readArgumentGroup(PathCommand(b))
	}

	return t.continueAfter()
}

// continueAfter decides, after a token has been emitted, whether the
// sequence continues with an implicit repetition of lastCmd, a new
// explicit command, or ends.
func (t *PathTokenizer) continueAfter() (PathToken, bool) {
	if t.lastCmd == PathClose || t.lastCmd == PathCloseRel {
		t.s.SkipSpaces()
		if t.s.AtEnd() {
			t.done = true
			return PathToken{}, false
		}
		b, _ := t.s.curByte()
		if !isPathCommandLetter(b) {
			t.fail(newErrorf(InvalidPath, t.s.GenTextPos(), "expected a command letter, found %q", b))
			return PathToken{}, false
		}
		t.s.pos++
		t.lastCmd = PathCommand(b)
		return t.readArgumentGroup(t.lastCmd)
	}

	if err := t.s.ParseListSeparator(); err != nil {
		t.fail(err)
		return PathToken{}, false
	}
	if t.s.AtEnd() {
		t.done = true
		return PathToken{}, false
	}

	b, _ := t.s.curByte()
	if isPathCommandLetter(b) {
		t.s.pos++
		t.lastCmd = PathCommand(b)
		return t.readArgumentGroup(t.lastCmd)
	}

	// No new command letter: continue the implicit repetition, converting
	// a moveto into the matching lineto.
	switch t.lastCmd {
	case PathMoveTo:
		t.lastCmd = PathLineTo
	case PathMoveToRel:
		t.lastCmd = PathLineToRel
	}
	return t.readArgumentGroup(t.lastCmd)
}

func (t *PathTokenizer) parseFlag() (bool, error) {
	if err := t.s.ParseListSeparator(); err != nil {
		return false, err
	}
	b, err := t.s.ConsumeEither("01")
	if err != nil {
		return false, newErrorf(InvalidPath, t.s.GenTextPos(), "expected an arc flag ('0' or '1')")
	}
	return b == '1', nil
}

func (t *PathTokenizer) parseArg() (float64, error) {
	if err := t.s.ParseListSeparator(); err != nil {
		return 0, err
	}
	return t.s.ParseNumber()
}

func (t *PathTokenizer) readArgumentGroup(cmd PathCommand) (PathToken, bool) {
	tok := PathToken{Cmd: cmd}

	switch cmd {
	case PathClose, PathCloseRel:
		// no payload

	case PathMoveTo, PathMoveToRel, PathLineTo, PathLineToRel, PathSmoothQuadratic, PathSmoothQuadraticRel:
		x, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		y, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.X, tok.Y = x, y

	case PathHorizontal, PathHorizontalRel:
		x, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.X = x

	case PathVertical, PathVerticalRel:
		y, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.Y = y

	case PathQuadratic, PathQuadraticRel:
		a, b, c, d, err := t.parseArg4()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.X1, tok.Y1, tok.X, tok.Y = a, b, c, d

	case PathSmoothCubic, PathSmoothCubicRel:
		a, b, c, d, err := t.parseArg4()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.X2, tok.Y2, tok.X, tok.Y = a, b, c, d

	case PathCubic, PathCubicRel:
		a, b, c, d, e, f, err := t.parseArg6()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.X1, tok.Y1, tok.X2, tok.Y2, tok.X, tok.Y = a, b, c, d, e, f

	case PathArc, PathArcRel:
		rx, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		ry, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		rot, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		large, err := t.parseFlag()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		sweep, err := t.parseFlag()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		x, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		y, err := t.parseArg()
		if err != nil {
			t.fail(err)
			return PathToken{}, false
		}
		tok.Rx, tok.Ry, tok.XAxisRotation = rx, ry, rot
		tok.LargeArc, tok.Sweep = large, sweep
		tok.X, tok.Y = x, y

	default:
		t.fail(newErrorf(InvalidPath, t.s.GenTextPos(), "unknown path command %q", byte(cmd)))
		return PathToken{}, false
	}

	return tok, true
}

func (t *PathTokenizer) parseArg4() (a, b, c, d float64, err error) {
	if a, err = t.parseArg(); err != nil {
		return
	}
	if b, err = t.parseArg(); err != nil {
		return
	}
	if c, err = t.parseArg(); err != nil {
		return
	}
	d, err = t.parseArg()
	return
}

func (t *PathTokenizer) parseArg6() (a, b, c, d, e, f float64, err error) {
	if a, b, c, d, err = t.parseArg4(); err != nil {
		return
	}
	if e, err = t.parseArg(); err != nil {
		return
	}
	f, err = t.parseArg()
	return
}
