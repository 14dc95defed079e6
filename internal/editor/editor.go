// Package editor implements the navigation and line-wrapping core of the
// rouge terminal editor: the virtual line table that maps the character
// buffer onto a fixed-size viewport, the cursor state machine driving it,
// and the modal key dispatch on top.
package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rouge-editor/rouge/internal/cachemanager"
	"github.com/rouge-editor/rouge/internal/config"
	"github.com/rouge-editor/rouge/internal/log"
	"github.com/rouge-editor/rouge/internal/textbuf"
)

// fileChangedMsg reports that the opened file was modified on disk.
type fileChangedMsg struct{}

// Editor is the Bubble Tea model for a single-buffer editing session. One
// Update call fully processes one event (dispatch, mutation, table rebuild,
// re-clamp) before the next is read; the buffer, table and cursor have no
// other owners.
type Editor struct {
	buf    *textbuf.Buffer
	cursor *Cursor
	table  []VLine
	mode   Mode

	width      int // full terminal width
	height     int // full terminal height, status line included
	gutter     int
	showStatus bool

	styles  Styles
	rows    *cachemanager.InMemoryCacheManager[string]
	notice  string
	changes <-chan struct{}
}

// New creates an editor over buf sized to the given terminal dimensions.
func New(buf *textbuf.Buffer, cfg config.Config, width, height int) (Editor, error) {
	if err := cfg.Validate(); err != nil {
		return Editor{}, err
	}

	e := Editor{
		buf:        buf,
		mode:       ModeNormal,
		width:      width,
		height:     height,
		gutter:     cfg.UI.GutterWidth,
		showStatus: cfg.UI.ShowStatusBar,
		styles:     StylesFromTheme(cfg.Theme),
		rows:       cachemanager.NewInMemoryCacheManager[string]("rows", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}

	table, err := Table(buf, e.wrapWidth())
	if err != nil {
		return Editor{}, err
	}
	e.table = table
	e.cursor = NewCursor(table, e.contentHeight())
	log.Info(log.CatEditor, "editor ready", "lines", buf.LineCount(), "vlines", len(table), "width", width, "height", height)
	return e, nil
}

// WatchChanges hooks up the on-disk change channel; a signal surfaces as a
// status line notice.
func (e *Editor) WatchChanges(ch <-chan struct{}) {
	e.changes = ch
}

// Mode returns the current input mode.
func (e Editor) Mode() Mode { return e.mode }

// Cursor exposes the cursor state for the renderer and tests.
func (e Editor) Cursor() *Cursor { return e.cursor }

// Table exposes the current virtual line table, read-only by convention.
func (e Editor) Table() []VLine { return e.table }

// Notice returns the current status line notice, if any.
func (e Editor) Notice() string { return e.notice }

// Buffer exposes the underlying text buffer.
func (e Editor) Buffer() *textbuf.Buffer { return e.buf }

// Init implements tea.Model.
func (e Editor) Init() tea.Cmd {
	return waitForChange(e.changes)
}

// Update implements tea.Model. Resize and quit arrive as ordinary events in
// the same stream as keys and are processed atomically like any other.
func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.resize(msg.Width, msg.Height)
		return e, nil
	case fileChangedMsg:
		log.Info(log.CatWatcher, "file changed on disk")
		e.notice = "file changed on disk"
		return e, waitForChange(e.changes)
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

// handleKey dispatches one key event through the command registry.
// ModeQuit is terminal: everything that still arrives is ignored.
func (e Editor) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if e.mode == ModeQuit {
		return e, nil
	}

	if key := keyToString(msg); key != "" {
		if cmd, ok := DefaultRegistry.Get(e.mode, key); ok {
			prev := e.mode
			if cmd.Execute(&e) == Executed {
				log.Debug(log.CatEditor, "executed", "id", cmd.ID(), "mode", e.mode, "offset", e.cursor.Offset())
			}
			if cmd.IsModeChange() && e.mode != prev {
				log.Info(log.CatEditor, "mode change", "from", prev, "to", e.mode)
			}
			if e.mode == ModeQuit {
				return e, tea.Quit
			}
			return e, nil
		}
	}

	// Fallback: character entry in Insert mode.
	if e.mode == ModeInsert {
		switch {
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				cmd := &InsertRuneCommand{r: r}
				cmd.Execute(&e)
			}
		case msg.Type == tea.KeySpace:
			cmd := &InsertRuneCommand{r: ' '}
			cmd.Execute(&e)
		}
	}
	return e, nil
}

// insertRune mutates the buffer at the cursor offset, rebuilds the virtual
// line table in full, and re-synchronizes the cursor against it.
func (e *Editor) insertRune(r rune) {
	e.buf.InsertRune(e.cursor.Offset(), r)
	e.rebuild()
	e.cursor.OnEdit(e.table, r == '\n')
	e.invalidateRows()
}

// rebuild recomputes the virtual line table for the current buffer content
// and wrap width. Always a full pass; never incremental.
func (e *Editor) rebuild() {
	table, err := Table(e.buf, e.wrapWidth())
	if err != nil {
		// Unreachable: wrapWidth clamps to at least 1.
		log.ErrorErr(log.CatWrap, "table rebuild failed", err)
		return
	}
	e.table = table
	log.Debug(log.CatWrap, "table rebuilt", "vlines", len(table), "width", e.wrapWidth())
}

// resize adopts new terminal dimensions: the table is rebuilt at the new
// wrap width and the cursor re-clamped without moving the logical cursor.
func (e *Editor) resize(width, height int) {
	e.width = width
	e.height = height
	e.rebuild()
	e.cursor.Resize(e.table, e.contentHeight())
	e.invalidateRows()
}

// wrapWidth returns the character width available for line content.
func (e Editor) wrapWidth() int {
	return max(e.width-e.gutter, 1)
}

// contentHeight returns the number of viewport rows, excluding the status
// line when shown.
func (e Editor) contentHeight() int {
	h := e.height
	if e.showStatus {
		h--
	}
	return max(h, 1)
}

// invalidateRows flushes the rendered-row cache.
func (e *Editor) invalidateRows() {
	e.rows.Flush()
}

// waitForChange blocks on the change channel and converts a signal into a
// message. Returns nil when no watcher is attached.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
