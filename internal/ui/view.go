package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region with Elm-style Init/Update/View.
// Modals pushed on the OverlayStack implement it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
