package editor

import (
	"github.com/rouge-editor/rouge/internal/log"
)

// Cursor tracks the editing position across three coordinate spaces at
// once: the absolute buffer offset, the virtual line index, and the on-screen
// row/column within the viewport. Every operation re-establishes the
// invariants on exit:
//
//	top <= vline < top+height   (whenever the table is non-empty)
//	row == vline - top
//	line == table[vline].Parent
//	0 <= col <= table[vline].Len()
//
// Movement never fails; boundary conditions clamp or no-op.
type Cursor struct {
	table  []VLine
	height int

	offset  int // absolute buffer offset, authoritative for edits
	vline   int // index into the virtual line table
	line    int // logical line, for the gutter
	row     int // vertical position within the viewport
	col     int // horizontal offset within the current virtual line
	desired int // sticky column remembered across vertical moves
	top     int // first virtual line shown in the viewport
}

// NewCursor creates a cursor at the origin of the given table.
// The table must be non-empty (an empty buffer still wraps to one segment).
func NewCursor(table []VLine, height int) *Cursor {
	return &Cursor{table: table, height: max(height, 1)}
}

// Offset returns the absolute buffer offset.
func (c *Cursor) Offset() int { return c.offset }

// VLine returns the index of the occupied virtual line.
func (c *Cursor) VLine() int { return c.vline }

// Line returns the logical line index, for display.
func (c *Cursor) Line() int { return c.line }

// Row returns the cursor's row within the viewport.
func (c *Cursor) Row() int { return c.row }

// Col returns the horizontal offset within the current virtual line.
func (c *Cursor) Col() int { return c.col }

// Top returns the index of the first visible virtual line.
func (c *Cursor) Top() int { return c.top }

// Desired returns the sticky column target.
func (c *Cursor) Desired() int { return c.desired }

// Height returns the viewport height in rows.
func (c *Cursor) Height() int { return c.height }

// cur returns the occupied virtual line.
func (c *Cursor) cur() VLine { return c.table[c.vline] }

// MoveRight advances one character within the current virtual line, or
// crosses onto the following continuation line at column zero. Horizontal
// movement retargets the sticky column; crossing a wrap boundary records the
// attempted, out-of-range column so intent survives the wrap. At end of
// buffer this is a no-op.
func (c *Cursor) MoveRight() {
	attempted := c.col + 1
	if attempted <= c.cur().Len() {
		c.col = attempted
		c.offset = c.cur().Start + c.col
		c.desired = attempted
		return
	}
	if c.vline+1 < len(c.table) && c.table[c.vline+1].Continuation && c.advance() {
		c.col = 0
		c.offset = c.cur().Start
		c.desired = attempted
		log.Debug(log.CatCursor, "wrapped forward", "vline", c.vline, "offset", c.offset, "desired", c.desired)
	}
}

// MoveLeft retreats one character, or jumps to the last character of the
// previous virtual line when sitting at the start of a continuation. The
// sticky column decrements (floored at zero) on a wrap-backward crossing.
// At start of buffer this is a no-op.
func (c *Cursor) MoveLeft() {
	if c.col > 0 {
		c.col--
		c.offset--
		c.desired = c.col
		return
	}
	if !c.cur().Continuation {
		return
	}
	c.vline--
	c.line = c.cur().Parent
	if c.row > 0 {
		c.row--
	} else if c.top > 0 {
		c.top--
	}
	c.col = max(c.cur().Len()-1, 0)
	c.offset--
	if c.desired > 0 {
		c.desired--
	}
	log.Debug(log.CatCursor, "wrapped backward", "vline", c.vline, "offset", c.offset, "desired", c.desired)
}

// MoveDown moves one virtual line down, scrolling the viewport when the
// cursor sits on the bottom row and content remains below the window. The
// column is re-derived from the sticky target on arrival.
func (c *Cursor) MoveDown() {
	if !c.advance() {
		return
	}
	c.capCursor()
	c.offset = c.cur().Start + c.col
}

// MoveUp moves one virtual line up, scrolling the viewport when the cursor
// sits on the top row. The column is re-derived from the sticky target on
// arrival.
func (c *Cursor) MoveUp() {
	if c.vline == 0 {
		return
	}
	c.vline--
	c.line = c.cur().Parent
	if c.row > 0 {
		c.row--
	} else if c.top > 0 {
		c.top--
	}
	c.capCursor()
	c.offset = c.cur().Start + c.col
}

// advance performs the vertical bookkeeping shared by MoveDown and the
// wrap-forward branch of MoveRight: step vline forward and either push the
// row down or scroll the window. Reports whether the cursor moved.
func (c *Cursor) advance() bool {
	if c.vline+1 >= len(c.table) {
		return false
	}
	if c.row+1 > c.height-1 {
		// Bottom row: scroll only while a virtual line remains below the window.
		if c.top+1 > len(c.table)-c.height {
			return false
		}
		c.top++
		c.vline++
	} else {
		c.row++
		c.vline++
	}
	c.line = c.cur().Parent
	return true
}

// capCursor re-clamps the column after vertical travel: the sticky target
// is honored as far as the new virtual line allows. Vertical moves never
// modify the target itself.
func (c *Cursor) capCursor() {
	n := c.cur().Len()
	if n == 0 {
		c.col = 0
		return
	}
	c.col = min(c.desired, n-1)
}

// OnEdit re-synchronizes the cursor after a single character was inserted
// at the cursor offset and the table was rebuilt. The cursor always ends up
// past the inserted content: a newline is tracked by MoveDown onto the new
// line, any other character by re-locating offset+1 in the new table. The
// relocation cannot be a MoveRight, which at a wrap boundary lands on
// column 0 of the continuation without advancing the offset and would leave
// the cursor on the character it just inserted.
func (c *Cursor) OnEdit(table []VLine, newline bool) {
	c.setTable(table)
	if newline {
		c.MoveDown()
		return
	}

	target := c.offset + 1
	if locateVLine(table, target) != c.vline {
		// Insertion pushed the cursor over the wrap boundary onto the
		// continuation; advance the viewport like a vertical move.
		c.advance()
	}
	c.col = target - c.cur().Start
	c.offset = target
	c.desired = c.col
	log.Debug(log.CatCursor, "edit re-sync", "vline", c.vline, "offset", c.offset, "col", c.col)
}

// setTable swaps in a freshly rebuilt table and re-clamps the position
// against it without moving the logical cursor.
func (c *Cursor) setTable(table []VLine) {
	c.table = table
	if c.vline > len(table)-1 {
		c.vline = len(table) - 1
	}
	if c.top > c.vline {
		c.top = c.vline
	}
	if c.vline-c.top > c.height-1 {
		c.top = c.vline - (c.height - 1)
	}
	c.row = c.vline - c.top
	c.line = c.cur().Parent
	if n := c.cur().Len(); c.col > n {
		c.col = n
	}
	c.offset = c.cur().Start + c.col
}

// Resize installs the table rebuilt for a new wrap width and adopts the new
// viewport height. The logical cursor (its buffer offset) stays put; the
// virtual line containing it is re-located and the viewport re-clamped
// around it.
func (c *Cursor) Resize(table []VLine, height int) {
	c.table = table
	c.height = max(height, 1)

	c.vline = locateVLine(table, c.offset)
	v := c.cur()
	c.line = v.Parent
	c.col = min(c.offset-v.Start, v.Len())
	c.offset = v.Start + c.col

	c.row = min(c.row, c.height-1)
	c.row = min(c.row, c.vline)
	c.top = c.vline - c.row
	log.Debug(log.CatCursor, "resized", "vline", c.vline, "top", c.top, "row", c.row, "height", c.height)
}
