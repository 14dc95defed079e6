package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
)

// View implements tea.Model. It paints the visible window of virtual lines
// with the line number gutter, the cursor cell, and the status line.
//
// Content cells are cached per virtual line between table rebuilds; the
// gutter is composed fresh each frame because its numbers are relative to
// the cursor line, and the cursor row bypasses the cache entirely.
func (e Editor) View() string {
	if e.width <= 0 || e.height <= 0 {
		return ""
	}

	rows := make([]string, 0, e.height)
	top := e.cursor.Top()
	for row := 0; row < e.contentHeight(); row++ {
		idx := top + row
		if idx >= len(e.table) {
			rows = append(rows, e.fillerRow())
			continue
		}
		rows = append(rows, e.gutterCell(e.table[idx])+e.contentCell(idx, row == e.cursor.Row()))
	}

	if e.showStatus {
		rows = append(rows, e.statusLine())
	}
	return strings.Join(rows, "\n")
}

// gutterCell renders the gutter for one virtual line: the relative line
// number on first segments, the continuation marker on wrapped ones.
func (e Editor) gutterCell(v VLine) string {
	if e.gutter == 0 {
		return ""
	}
	if v.Continuation {
		return e.styles.Continuation.Render(padding.String(" @", uint(e.gutter)))
	}
	rel := e.cursor.Line() - v.Parent
	if rel < 0 {
		rel = -rel
	}
	return e.styles.Gutter.Render(padding.String(fmt.Sprintf("%d", rel), uint(e.gutter)))
}

// contentCell renders one virtual line's text, padded to the wrap width,
// with the cursor cell reversed when this is the cursor row.
func (e Editor) contentCell(idx int, withCursor bool) string {
	if !withCursor {
		key := fmt.Sprintf("row:%d", idx)
		if cached, ok := e.rows.Get(key); ok {
			return cached
		}
		cell := e.plainCell(idx)
		e.rows.Set(key, cell)
		return cell
	}

	v := e.table[idx]
	text := []rune(e.buf.Slice(v.Start, v.End))
	col := e.cursor.Col()

	prefix := string(text[:min(col, len(text))])
	under := " "
	suffix := ""
	if col < len(text) {
		under = string(text[col])
		suffix = string(text[col+1:])
	}

	cell := prefix + e.styles.Cursor.Render(under) + suffix
	return cell + pad(e.wrapWidth()-DisplayWidth(string(text))-boolToInt(col >= len(text)))
}

// plainCell renders a cursor-free content cell.
func (e Editor) plainCell(idx int) string {
	v := e.table[idx]
	text := e.buf.Slice(v.Start, v.End)
	return text + pad(e.wrapWidth()-DisplayWidth(text))
}

// fillerRow marks a row past the end of the virtual line table.
func (e Editor) fillerRow() string {
	return pad(e.gutter) + e.styles.Filler.Render("~")
}

// statusLine renders "[MODE] <notice>" left and "(line:col)" right, fitted
// to the terminal width.
func (e Editor) statusLine() string {
	left := e.styles.ModeIndicator(e.mode)
	if e.notice != "" {
		left += " " + e.styles.Notice.Render(e.notice)
	}
	right := fmt.Sprintf("(%d:%d)", e.cursor.Line(), e.cursor.Col())

	fill := e.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if fill < 1 {
		left = ansi.Truncate(left, max(e.width-ansi.StringWidth(right)-1, 0), "")
		fill = 1
	}
	return e.styles.StatusBar.Render(ansi.Truncate(left+pad(fill)+right, e.width, ""))
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
