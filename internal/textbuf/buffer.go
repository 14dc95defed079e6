// Package textbuf provides the mutable character buffer backing the editor.
//
// The buffer is addressed two ways: by absolute character (rune) offset, and
// by logical line index. Newlines count as one character each and sit between
// lines; they are never part of a line's content. Both views stay consistent
// across insertions.
package textbuf

import (
	"bufio"
	"io"
	"strings"
)

// Buffer is an ordered, mutable sequence of characters split into logical
// lines. The zero value is not usable; construct with New or NewFromString.
type Buffer struct {
	lines [][]rune
}

// New reads the full contents of r into a new Buffer.
func New(r io.Reader) (*Buffer, error) {
	var sb strings.Builder
	br := bufio.NewReader(r)
	if _, err := io.Copy(&sb, br); err != nil {
		return nil, err
	}
	return NewFromString(sb.String()), nil
}

// NewFromString creates a Buffer from s. The empty string yields a buffer
// with a single empty line.
func NewFromString(s string) *Buffer {
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{lines: lines}
}

// LineCount returns the number of logical lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the character length of line i, excluding its newline.
// Out-of-range indexes return 0.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// LineStart returns the absolute offset of the first character of line i.
// The index is clamped into the valid line range.
func (b *Buffer) LineStart(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(b.lines) {
		i = len(b.lines) - 1
	}
	start := 0
	for j := 0; j < i; j++ {
		start += len(b.lines[j]) + 1 // content plus newline
	}
	return start
}

// Len returns the total character count, newlines included.
func (b *Buffer) Len() int {
	n := 0
	for _, line := range b.lines {
		n += len(line)
	}
	return n + len(b.lines) - 1
}

// locate maps an absolute offset to (line, column). Offsets are clamped into
// [0, Len()]. An offset pointing at a line's newline maps to the column one
// past that line's last character.
func (b *Buffer) locate(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	for i, l := range b.lines {
		if offset <= len(l) {
			return i, offset
		}
		offset -= len(l) + 1
	}
	last := len(b.lines) - 1
	return last, len(b.lines[last])
}

// InsertRune inserts r at the given absolute offset. Inserting '\n' splits
// the containing line in two. Offsets outside [0, Len()] are clamped.
func (b *Buffer) InsertRune(offset int, r rune) {
	line, col := b.locate(offset)
	cur := b.lines[line]

	if r == '\n' {
		head := append([]rune{}, cur[:col]...)
		tail := append([]rune{}, cur[col:]...)
		b.lines = append(b.lines[:line], append([][]rune{head, tail}, b.lines[line+1:]...)...)
		return
	}

	next := make([]rune, 0, len(cur)+1)
	next = append(next, cur[:col]...)
	next = append(next, r)
	next = append(next, cur[col:]...)
	b.lines[line] = next
}

// Slice returns the characters in [start, end) as a string, with newlines
// where line boundaries are crossed. Bounds are clamped; an empty or
// inverted range yields "".
func (b *Buffer) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > b.Len() {
		end = b.Len()
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	sb.Grow(end - start)
	offset := 0
	for i, line := range b.lines {
		for j := 0; j <= len(line); j++ {
			if offset >= end {
				return sb.String()
			}
			if offset >= start {
				if j == len(line) {
					if i < len(b.lines)-1 {
						sb.WriteByte('\n')
					}
				} else {
					sb.WriteRune(line[j])
				}
			}
			offset++
		}
	}
	return sb.String()
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}
