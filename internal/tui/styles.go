package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

// Palette renders text for one output mode. The zero value is plain.
type Palette struct {
	color bool
}

// PaletteFor returns a styled palette for ModeTUI and a plain one otherwise.
func PaletteFor(mode OutputMode) Palette {
	return Palette{color: mode == ModeTUI}
}

func (p Palette) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Accent is used for the banner and section headers.
func (p Palette) Accent(s string) string { return p.render(accentStyle, s) }

// Highlight marks file names and versions inside a message.
func (p Palette) Highlight(s string) string { return p.render(highlightStyle, s) }

func (p Palette) Error(s string) string { return p.render(errorStyle, s) }

func (p Palette) Success(s string) string { return p.render(successStyle, s) }

func (p Palette) Faint(s string) string { return p.render(faintStyle, s) }
