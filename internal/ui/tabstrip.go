package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seminar/internal/deck"
	"seminar/internal/ui/textutil"
)

const (
	tabGap       = 1
	tabIndicator = 2 // "‹ " or " ›"
)

// tabSpan is the horizontal extent of one pill, relative to the strip.
type tabSpan struct {
	ID     deck.SectionID
	Label  string
	X0, X1 int // [X0, X1)
}

// layoutTabs positions the pills for a strip of the given width. When they
// do not all fit, the strip is windowed so the current pill stays visible
// and arrows mark the hidden sides.
func layoutTabs(current deck.SectionID, sections []deck.Section, width int) (spans []tabSpan, moreLeft, moreRight bool) {
	n := len(sections)
	if n == 0 {
		return nil, false, false
	}
	pw := make([]int, n)
	for i, s := range sections {
		pw[i] = textutil.Width(s.Label) + 2
	}
	spanWidth := func(a, b int) int {
		w := 0
		for i := a; i < b; i++ {
			w += pw[i]
		}
		return w + (b-a-1)*tabGap
	}

	start, end := 0, n
	x := 0
	if spanWidth(0, n) > width {
		active := max(indexOfSection(sections, current), 0)
		avail := width - 2*tabIndicator
		for start < active && spanWidth(start, active+1) > avail {
			start++
		}
		end = active + 1
		for end < n && spanWidth(start, end+1) <= avail {
			end++
		}
		x = tabIndicator
		moreLeft, moreRight = start > 0, end < n
	}

	for i := start; i < end; i++ {
		spans = append(spans, tabSpan{ID: sections[i].ID, Label: sections[i].Label, X0: x, X1: x + pw[i]})
		x += pw[i] + tabGap
	}
	return spans, moreLeft, moreRight
}

func indexOfSection(sections []deck.Section, id deck.SectionID) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// RenderTabStrip draws the narrow-layout navigation: a single row of pills
// with the current one highlighted, over a horizontal rule.
func RenderTabStrip(current deck.SectionID, sections []deck.Section, r Rect) string {
	if r.Empty() {
		return ""
	}
	spans, moreLeft, moreRight := layoutTabs(current, sections, r.W)

	var b strings.Builder
	col := 0
	if moreLeft {
		b.WriteString(Styles.Hint.Render("‹ "))
		col = tabIndicator
	}
	for _, sp := range spans {
		if pad := sp.X0 - col; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		style := Styles.Pill
		if sp.ID == current {
			style = Styles.PillOn
		}
		b.WriteString(style.Render(" " + sp.Label + " "))
		col = sp.X1
	}
	if moreRight {
		if pad := r.W - tabIndicator - col; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(Styles.Hint.Render(" ›"))
	}

	row := lipgloss.NewStyle().MaxWidth(r.W).Render(b.String())
	return row + "\n" + rule(r.W)
}

// tabHit returns the section whose pill is drawn at (x, y), if any.
func tabHit(l Layout, current deck.SectionID, sections []deck.Section, x, y int) (deck.SectionID, bool) {
	if !l.Tabs.Contains(x, y) || y != l.Tabs.Y {
		return "", false
	}
	spans, _, _ := layoutTabs(current, sections, l.Tabs.W)
	rx := x - l.Tabs.X
	for _, sp := range spans {
		if rx >= sp.X0 && rx < sp.X1 {
			return sp.ID, true
		}
	}
	return "", false
}
