package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"seminar/internal/deck"
)

// SelectSectionMsg asks the controller to show a section. Every navigation
// surface produces it.
type SelectSectionMsg struct {
	ID deck.SectionID
}

// StepSectionMsg moves relative to the current section (+1 next, -1 prev).
type StepSectionMsg struct {
	Delta int
}

// JumpEdgeMsg selects the first (Last=false) or last section.
type JumpEdgeMsg struct {
	Last bool
}

// ToggleNotesMsg shows or hides the presenter notes panel (SPC n).
type ToggleNotesMsg struct{}

// ToggleSidebarMsg shows or hides the sidebar in the wide layout (SPC b).
type ToggleSidebarMsg struct{}

// ShowSwitcherMsg opens the section switcher modal (SPC s).
type ShowSwitcherMsg struct{}

// DismissModalMsg closes the topmost overlay.
type DismissModalMsg struct{}

// selectCmd returns a command that emits SelectSectionMsg for id.
func selectCmd(id deck.SectionID) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{ID: id} }
}
