package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seminar/internal/deck"
	"seminar/internal/ui/textutil"
)

// sidebarListOffset is the row of the first entry inside the sidebar
// ("INDEX" heading, blank line).
const sidebarListOffset = 2

// RenderSidebar draws the wide-layout index: one numbered row per section,
// the current one marked. It holds no state of its own.
func RenderSidebar(current deck.SectionID, sections []deck.Section, r Rect) string {
	if r.Empty() {
		return ""
	}
	w := r.W - 1 // right rule
	lines := make([]string, 0, r.H)
	lines = append(lines, " "+Styles.Hint.Bold(true).Render("INDEX"), "")

	labelW := w - 7 // marker, space, badge, space
	for i, s := range sections {
		if len(lines) >= r.H-1 {
			break
		}
		marker := " "
		label := Styles.Inactive.Render(textutil.Truncate(s.Label, labelW))
		if s.ID == current {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Render("▌")
			label = Styles.Active.Render(textutil.Truncate(s.Label, labelW))
		}
		lines = append(lines, marker+" "+Styles.Badge.Render(" "+deck.Badge(i)+" ")+" "+label)
	}
	for len(lines) < r.H-1 {
		lines = append(lines, "")
	}
	if r.H > 1 {
		lines = append(lines, " "+Styles.Muted.Render(textutil.Truncate(deck.Author, w-1)))
	}

	return lipgloss.NewStyle().
		Width(w).
		Height(r.H).
		MaxHeight(r.H).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Render(strings.Join(lines, "\n"))
}

// sidebarHit returns the section drawn at (x, y), if any.
func sidebarHit(l Layout, sections []deck.Section, x, y int) (deck.SectionID, bool) {
	if !l.Sidebar.Contains(x, y) {
		return "", false
	}
	i := y - l.Sidebar.Y - sidebarListOffset
	if i < 0 || i >= len(sections) || sidebarListOffset+i >= l.Sidebar.H-1 {
		return "", false
	}
	return sections[i].ID, true
}
