package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rouge-editor/rouge/internal/config"
)

// Styles bundles the lipgloss styles the renderer paints with.
type Styles struct {
	Gutter       lipgloss.Style // line number cells
	Continuation lipgloss.Style // " @" marker on wrapped segments
	Filler       lipgloss.Style // "~" rows past the end of the table
	Cursor       lipgloss.Style // cell under the cursor
	StatusBar    lipgloss.Style // status line background
	Notice       lipgloss.Style // transient notices on the status line
	ModeNormal   lipgloss.Style
	ModeInsert   lipgloss.Style
	ModeQuit     lipgloss.Style
}

// StylesFromTheme builds the style set, applying any hex overrides from the
// theme configuration.
func StylesFromTheme(theme config.ThemeConfig) Styles {
	highlight := pickColor(theme.Highlight, "#7571F9")
	subtle := pickColor(theme.Subtle, "#5C5C5C")
	errColor := pickColor(theme.Error, "#ED567A")

	return Styles{
		Gutter:       lipgloss.NewStyle().Foreground(subtle),
		Continuation: lipgloss.NewStyle().Foreground(subtle),
		Filler:       lipgloss.NewStyle().Foreground(subtle),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		StatusBar:    lipgloss.NewStyle().Background(lipgloss.Color("#303030")).Foreground(lipgloss.Color("#D0D0D0")),
		Notice:       lipgloss.NewStyle().Foreground(errColor),
		ModeNormal:   lipgloss.NewStyle().Foreground(highlight).Bold(true),
		ModeInsert:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		ModeQuit:     lipgloss.NewStyle().Foreground(errColor).Bold(true),
	}
}

// ModeIndicator returns the styled "[MODE]" fragment for the status line.
func (s Styles) ModeIndicator(m Mode) string {
	var style lipgloss.Style
	switch m {
	case ModeInsert:
		style = s.ModeInsert
	case ModeQuit:
		style = s.ModeQuit
	default:
		style = s.ModeNormal
	}
	return style.Render("[" + m.String() + "]")
}

func pickColor(hex, fallback string) lipgloss.Color {
	if hex == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(hex)
}
