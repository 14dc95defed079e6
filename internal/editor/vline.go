package editor

import (
	"errors"
	"sort"

	"github.com/rouge-editor/rouge/internal/textbuf"
)

// ErrZeroWidth is returned when a wrap width below 1 is requested. Width
// validation is the caller's responsibility; the wrapper refuses rather than
// divide by zero.
var ErrZeroWidth = errors.New("wrap width must be at least 1")

// VLine describes one width-bounded segment of a logical line: the
// half-open character range [Start, End) of the buffer, the logical line it
// belongs to, and whether it is a continuation (not the first segment of its
// parent). Newlines are never part of any segment.
type VLine struct {
	Start        int
	End          int
	Parent       int
	Continuation bool
}

// Len returns the segment length in characters.
func (v VLine) Len() int {
	return v.End - v.Start
}

// Contains reports whether the buffer offset falls within the segment's
// half-open range. An empty segment contains exactly its own start offset.
func (v VLine) Contains(offset int) bool {
	if v.Start == v.End {
		return offset == v.Start
	}
	return offset >= v.Start && offset < v.End
}

// Wrapper lazily yields the virtual lines of a buffer at a fixed wrap
// width, in logical-line order with each line's segments left to right.
// A logical line of length L yields max(1, ceil(L/W)) segments that exactly
// partition its content; an empty line yields a single empty segment.
type Wrapper struct {
	buf       *textbuf.Buffer
	width     int
	line      int
	lineOff   int
	lineStart int
}

// NewWrapper creates a Wrapper over buf. width must be at least 1.
func NewWrapper(buf *textbuf.Buffer, width int) (*Wrapper, error) {
	if width < 1 {
		return nil, ErrZeroWidth
	}
	return &Wrapper{buf: buf, width: width}, nil
}

// Reset restarts iteration from the first logical line.
func (w *Wrapper) Reset() {
	w.line = 0
	w.lineOff = 0
	w.lineStart = 0
}

// Next returns the next virtual line, or ok=false when iteration is done.
func (w *Wrapper) Next() (v VLine, ok bool) {
	if w.line >= w.buf.LineCount() {
		return VLine{}, false
	}

	lineLen := w.buf.LineLen(w.line)
	start := w.lineStart + w.lineOff
	n := min(w.width, lineLen-w.lineOff)

	v = VLine{
		Start:        start,
		End:          start + n,
		Parent:       w.line,
		Continuation: w.lineOff != 0,
	}

	w.lineOff += n
	if w.lineOff >= lineLen {
		// Line exhausted; a remainder of exactly zero emits no extra segment.
		w.line++
		w.lineOff = 0
		w.lineStart += lineLen + 1 // skip the newline
	}
	return v, true
}

// Table collects the full virtual line table for buf at the given wrap
// width. The table is rebuilt from scratch on every call; there is no
// incremental re-wrapping.
func Table(buf *textbuf.Buffer, width int) ([]VLine, error) {
	w, err := NewWrapper(buf, width)
	if err != nil {
		return nil, err
	}
	table := make([]VLine, 0, buf.LineCount())
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		table = append(table, v)
	}
	return table, nil
}

// locateVLine returns the index of the virtual line containing the given
// buffer offset. Offsets that fall on a newline or at end of buffer resolve
// to the segment they terminate. The table must be non-empty.
func locateVLine(table []VLine, offset int) int {
	i := sort.Search(len(table), func(i int) bool {
		return table[i].Start > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}
