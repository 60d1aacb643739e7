package svgvalue

// Span is a borrowed view over a region of a parent string. It never copies:
// every higher-level token in this package carries a Span rather than a
// freshly allocated string, so the lifetime of a token's text is bound to
// the lifetime of the caller's input buffer.
type Span struct {
	parent     string
	start, end int
}

// NewSpan returns the Span covering parent[start:end]. Callers outside this
// package normally get a Span back from a tokenizer rather than building one
// directly; NewSpan exists for collaborators (an XML-layer tokenizer, tests)
// that already know byte offsets into the same buffer.
func NewSpan(parent string, start, end int) Span {
	if start < 0 || end < start || end > len(parent) {
		panic("svgvalue: invalid span bounds")
	}
	return Span{parent: parent, start: start, end: end}
}

// Str returns the substring the Span refers to.
func (s Span) Str() string {
	return s.parent[s.start:s.end]
}

// Start is the byte offset of the Span's first byte within its parent.
func (s Span) Start() int { return s.start }

// End is the byte offset one past the Span's last byte within its parent.
func (s Span) End() int { return s.end }

// Len is the number of bytes the Span covers.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty reports whether the Span covers zero bytes.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Slice returns the sub-span [from, to) of s, where from and to are relative
// to the start of s (not to the parent string).
func (s Span) Slice(from, to int) Span {
	if from < 0 || to < from || s.start+to > s.end {
		panic("svgvalue: invalid span slice")
	}
	return Span{parent: s.parent, start: s.start + from, end: s.start + to}
}

func (s Span) String() string { return s.Str() }
