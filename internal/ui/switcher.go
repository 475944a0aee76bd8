package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"seminar/internal/deck"
)

const (
	switcherWidth  = 44
	switcherHeight = 14
)

// SwitcherModal is a filterable picker over the section registry (SPC s).
type SwitcherModal struct {
	list list.Model
}

type switcherItem struct {
	section deck.Section
	badge   string
}

func (i switcherItem) FilterValue() string { return i.section.Label + " " + string(i.section.ID) }
func (i switcherItem) Title() string       { return i.badge + "  " + i.section.Label }
func (i switcherItem) Description() string { return "" }

var _ View = (*SwitcherModal)(nil)

// NewSwitcherModal lists sections with the cursor on current.
func NewSwitcherModal(current deck.SectionID, sections []deck.Section) *SwitcherModal {
	items := make([]list.Item, len(sections))
	for i, s := range sections {
		items[i] = switcherItem{section: s, badge: deck.Badge(i)}
	}
	l := list.New(items, newCompactListDelegate(), switcherWidth, switcherHeight)
	l.Title = "Go to section"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Heading
	if i := indexOfSection(sections, current); i >= 0 {
		l.Select(i)
	}
	return &SwitcherModal{list: l}
}

// Init implements View.
func (m *SwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View. While the filter prompt is open, enter and esc
// belong to the list.
func (m *SwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(switcherItem); ok {
				id := sel.section.ID
				return m, tea.Batch(
					func() tea.Msg { return DismissModalMsg{} },
					selectCmd(id),
				)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the section under the cursor.
func (m *SwitcherModal) Selected() (deck.SectionID, bool) {
	sel, ok := m.list.SelectedItem().(switcherItem)
	if !ok {
		return "", false
	}
	return sel.section.ID, true
}

// View implements View.
func (m *SwitcherModal) View() string {
	return Styles.Box.Render(m.list.View() + "\n" + Styles.Hint.Render("enter: go  /: filter  esc: close"))
}
