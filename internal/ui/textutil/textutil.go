// Package textutil provides unicode-aware width helpers for laying out
// balances, names and hints in fixed-width terminal rows.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled is VisualWidth for strings carrying ANSI styling.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text to at most maxWidth columns, ending in "…"
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, avail, "") + TruncateEllipsis
}

// PadRightVisual pads plain text with spaces to width columns, truncating
// when it is already wider.
func PadRightVisual(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// SpaceBetween places left and right (styled or not) at opposite ends of a
// width-column row. At least one space separates them.
func SpaceBetween(left, right string, width int) string {
	gap := width - VisualWidthStyled(left) - VisualWidthStyled(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
