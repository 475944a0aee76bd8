package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"seminar/internal/deck"
	"seminar/internal/ui/textutil"
)

// RenderHeader draws the brand line and the rule under it. The tagline is
// dropped when the terminal is too narrow for both.
func RenderHeader(width int) string {
	if width <= 0 {
		return ""
	}
	brand := Styles.Brand.Render(" " + textutil.Truncate(deck.Brand, width-1))
	tagline := Styles.Tagline.Render(deck.Tagline + " ")
	line := brand
	if textutil.StyledWidth(brand)+textutil.StyledWidth(tagline)+2 <= width {
		line = textutil.SpaceBetween(brand, tagline, width)
	}
	return line + "\n" + rule(width)
}

// RenderFooter draws the key hints for the current layout, with the slide
// position on the right.
func RenderFooter(h help.Model, mode LayoutMode, current deck.SectionID, width int) string {
	if width <= 0 {
		return ""
	}
	pos := ""
	if i := deck.IndexOf(current); i >= 0 {
		pos = Styles.Muted.Render(deck.Badge(i)+"/"+deck.Badge(deck.Len()-1)) + " "
	}
	h.Width = max(width-textutil.StyledWidth(pos)-2, 0)
	hints := " " + h.ShortHelpView(footerBindings(mode))
	return textutil.SpaceBetween(hints, pos, width)
}

func rule(width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Render(strings.Repeat("─", width))
}
