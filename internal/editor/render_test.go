package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/rouge-editor/rouge/internal/config"
	"github.com/rouge-editor/rouge/internal/textbuf"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// viewLines strips styling and splits the rendered frame into rows.
func viewLines(e Editor) []string {
	return strings.Split(ansi.Strip(e.View()), "\n")
}

// ============================================================================
// Layout Tests
// ============================================================================

// TestView_BasicLayout verifies gutter, padded content, filler rows and the
// status line
func TestView_BasicLayout(t *testing.T) {
	e := newTestEditor(t, "hello\nworld", 20, 5)

	lines := viewLines(e)

	require.Len(t, lines, 5)
	require.Equal(t, "0  hello            ", lines[0])
	require.Equal(t, "1  world            ", lines[1])
	require.Equal(t, "   ~", lines[2])
	require.Equal(t, "   ~", lines[3])
	require.Equal(t, "[NORMAL]       (0:0)", lines[4])
}

// TestView_ContinuationMarker verifies wrapped segments carry the marker
// instead of a line number
func TestView_ContinuationMarker(t *testing.T) {
	e := newTestEditor(t, "abcdefgh", 9, 4)

	lines := viewLines(e)

	require.Equal(t, "0  abcdef", lines[0])
	require.Equal(t, " @ gh    ", lines[1])
	require.Equal(t, "   ~", lines[2])
}

// TestView_RelativeLineNumbers verifies the gutter counts distance from the
// cursor line
func TestView_RelativeLineNumbers(t *testing.T) {
	e := newTestEditor(t, "a\nb\nc\nd\ne", 20, 6)
	e, _ = press(t, e, runeKey('s'))
	e, _ = press(t, e, runeKey('s'))

	lines := viewLines(e)

	require.Equal(t, "2", strings.Fields(lines[0])[0])
	require.Equal(t, "1", strings.Fields(lines[1])[0])
	require.Equal(t, "0", strings.Fields(lines[2])[0])
	require.Equal(t, "1", strings.Fields(lines[3])[0])
	require.Equal(t, "2", strings.Fields(lines[4])[0])
}

// TestView_ScrolledWindow verifies only the window [top, top+height) is
// painted
func TestView_ScrolledWindow(t *testing.T) {
	e := newTestEditor(t, "a\nb\nc\nd\ne", 20, 3)
	for i := 0; i < 4; i++ {
		e, _ = press(t, e, runeKey('s'))
	}

	lines := viewLines(e)

	require.Contains(t, lines[0], "d")
	require.Contains(t, lines[1], "e")
	require.NotContains(t, ansi.Strip(e.View()), "a\n")
}

// TestView_CursorCellReversed verifies the cursor paints as reverse video
func TestView_CursorCellReversed(t *testing.T) {
	e := newTestEditor(t, "hello", 20, 5)

	view := e.View()

	require.Contains(t, view, "\x1b[7m", "cursor row carries a reverse-video cell")
}

// TestView_CursorPastLineEnd verifies the cursor renders on the phantom
// cell one past the last character
func TestView_CursorPastLineEnd(t *testing.T) {
	e := newTestEditor(t, "ab", 20, 5)
	e, _ = press(t, e, runeKey('d'))
	e, _ = press(t, e, runeKey('d'))

	lines := viewLines(e)

	require.Equal(t, "0  ab               ", lines[0], "row width survives the phantom cell")
}

// TestView_ZeroSize verifies rendering before the first size message is
// a no-op
func TestView_ZeroSize(t *testing.T) {
	e := newTestEditor(t, "hello", 20, 5)
	model, _ := e.Update(tea.WindowSizeMsg{Width: 0, Height: 0})

	require.Equal(t, "", model.(Editor).View())
}

// ============================================================================
// Status Line Tests
// ============================================================================

// TestView_StatusReflectsModeAndPosition verifies the status fragments
func TestView_StatusReflectsModeAndPosition(t *testing.T) {
	e := newTestEditor(t, "abc\ndef", 20, 5)
	e, _ = press(t, e, runeKey('s'))
	e, _ = press(t, e, runeKey('d'))
	e, _ = press(t, e, runeKey('i'))

	lines := viewLines(e)
	status := lines[len(lines)-1]

	require.Contains(t, status, "[INSERT]")
	require.Contains(t, status, "(1:1)")
}

// TestView_StatusShowsNotice verifies the on-disk change notice appears
func TestView_StatusShowsNotice(t *testing.T) {
	e := newTestEditor(t, "abc", 40, 5)
	ch := make(chan struct{}, 1)
	e.WatchChanges(ch)
	model, _ := e.Update(fileChangedMsg{})
	e = model.(Editor)

	lines := viewLines(e)

	require.Contains(t, lines[len(lines)-1], "file changed on disk")
}

// TestView_StatusBarDisabled verifies hiding the status line frees its row
// for content
func TestView_StatusBarDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.ShowStatusBar = false
	e, err := New(textbuf.NewFromString("a\nb\nc\nd\ne"), cfg, 20, 3)
	require.NoError(t, err)

	lines := viewLines(e)

	require.Len(t, lines, 3)
	require.Contains(t, lines[2], "c")
}

// ============================================================================
// Cache Tests
// ============================================================================

// TestView_RowCacheInvalidatedOnEdit verifies edited content is repainted,
// not served stale from the cache
func TestView_RowCacheInvalidatedOnEdit(t *testing.T) {
	e := newTestEditor(t, "abc\ndef", 20, 5)
	_ = e.View() // populate the cache

	e, _ = press(t, e, runeKey('s'))
	e, _ = press(t, e, runeKey('i'))
	e, _ = press(t, e, runeKey('X'))
	e, _ = press(t, e, tea.KeyMsg{Type: tea.KeyEscape})
	e, _ = press(t, e, runeKey('w'))

	require.Contains(t, ansi.Strip(e.View()), "Xdef")
}

// TestView_RedrawFlushesCache verifies the manual redraw binding empties
// the row cache
func TestView_RedrawFlushesCache(t *testing.T) {
	e := newTestEditor(t, "a\nb\nc", 20, 5)
	_ = e.View()
	require.NotZero(t, e.rows.ItemCount())

	e, _ = press(t, e, runeKey('r'))

	require.Zero(t, e.rows.ItemCount())
}
