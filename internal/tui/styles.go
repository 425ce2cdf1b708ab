package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for the watch view.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// TreeStyles colors a rendered file tree.
type TreeStyles struct {
	Root       lipgloss.Style
	Dir        lipgloss.Style
	File       lipgloss.Style
	Meta       lipgloss.Style // sizes, checksums
	Enumerator lipgloss.Style
}

// NewTreeStyles creates tree styles bound to r, so that color output follows
// r's color profile rather than the process's stdout.
func NewTreeStyles(r *lipgloss.Renderer) TreeStyles {
	return TreeStyles{
		Root:       r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Dir:        r.NewStyle().Bold(true).Foreground(ColorPrimary),
		File:       r.NewStyle(),
		Meta:       r.NewStyle().Foreground(ColorMuted),
		Enumerator: r.NewStyle().Foreground(ColorSecondary).PaddingRight(1),
	}
}

// PlainTreeStyles renders without any decoration.
func PlainTreeStyles() TreeStyles {
	plain := lipgloss.NewStyle()
	return TreeStyles{
		Root:       plain,
		Dir:        plain,
		File:       plain,
		Meta:       plain,
		Enumerator: plain.PaddingRight(1),
	}
}

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "→"
	SymbolBullet     = "•"
)
