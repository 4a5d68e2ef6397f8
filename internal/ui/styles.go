package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "42"  // Green - for primary buttons, amounts
	ColorHighlight = "33"  // Blue - for the selected preset, focus
	ColorDanger    = "196" // Red - for losses
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorCard      = "236" // Dark gray - card background
	ColorButton    = "238" // Button background
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Header lipgloss.Style // Screen header ("Money")
	Title  lipgloss.Style // Card and modal titles
	Amount lipgloss.Style // Large balance figures

	// Box styles
	Card       lipgloss.Style // Home screen card
	Modal      lipgloss.Style // Bottom-sheet overlay
	FullScreen lipgloss.Style // Loading/success overlays

	// Buttons
	Button         lipgloss.Style // Primary action (green)
	ButtonDisabled lipgloss.Style // Primary action when guarded off
	Chip           lipgloss.Style // Preset amount / keypad key
	ChipSelected   lipgloss.Style // Selected preset

	// Text styles
	Selected lipgloss.Style // Highlighted row
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style
	Hint     lipgloss.Style // Help/hint text
	Section  lipgloss.Style // Section headers ("Save & invest")
	Positive lipgloss.Style
	Negative lipgloss.Style
	Empty    lipgloss.Style // Empty state text (muted, italic)
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Padding(1, 2, 0, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Amount: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCard)).
		Padding(0, 2).
		Margin(0, 1).
		Width(44),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 3).
		Width(48),
	FullScreen: lipgloss.NewStyle().
		Padding(2, 4),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 3),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color(ColorButton)).
		Padding(0, 3),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorButton)).
		Padding(0, 2).
		MarginRight(1),
	ChipSelected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		MarginRight(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Padding(1, 2, 0, 2),
	Positive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Negative: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(1)
	d.Styles.SelectedDesc = Styles.Selected.PaddingLeft(1)
	d.Styles.NormalTitle = Styles.Normal.PaddingLeft(1)
	d.Styles.NormalDesc = Styles.Muted.PaddingLeft(1)
	return d
}

// avatar renders a contact's initial on its color.
func avatar(initial, color string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(initial)
}
