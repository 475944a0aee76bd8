// Package textutil measures and fits text to terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. s must not carry
// ANSI escapes; use StyledWidth for rendered strings.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth returns the widest line of a rendered (possibly styled,
// possibly multi-line) string.
func StyledWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// SpaceBetween places left and right on one line of the given width,
// truncating left first when they do not fit. Both sides may be styled.
func SpaceBetween(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := StyledWidth(right)
	if rw >= width {
		return ansi.Truncate(right, width, Ellipsis)
	}
	gap := width - StyledWidth(left) - rw
	if gap < 1 {
		left = ansi.Truncate(left, width-rw-1, Ellipsis)
		gap = width - StyledWidth(left) - rw
	}
	return left + strings.Repeat(" ", gap) + right
}
