package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"seminar/internal/deck"
)

// newTestApp returns a sized app model and its adapter.
func newTestApp(t *testing.T, width, height int, opts ...Option) (*AppModel, tea.Model) {
	t.Helper()
	m := NewAppModel(context.Background(), opts...)
	a := m.AsTeaModel()
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, a
}

// press sends a key and feeds the resulting message back, like the runtime.
func press(a tea.Model, key string) tea.Msg {
	_, cmd := a.Update(keyMsg(key))
	return drain(a, cmd)
}

// drain runs cmd and delivers its messages, flattening batches.
func drain(a tea.Model, cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		var last tea.Msg
		for _, c := range msg {
			last = drain(a, c)
		}
		return last
	case tea.QuitMsg:
		return msg
	case nil:
		return nil
	}
	_, next := a.Update(msg)
	drain(a, next)
	return msg
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestAppModel_InitialState(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	if m.Deck.Current() != deck.SectionIntro {
		t.Errorf("initial section = %q, want intro", m.Deck.Current())
	}
	view := a.View()
	if !containsAll(view, deck.Brand, "INDEX", "LLMs in Production: What Breaks", "Notes") {
		t.Errorf("initial view missing frame parts:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 40 {
		t.Errorf("view height = %d, want 40", got)
	}
}

func TestAppModel_SelectFrustrations(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	a.Update(SelectSectionMsg{ID: deck.SectionFrustrations})
	if m.Deck.Current() != deck.SectionFrustrations {
		t.Fatalf("current = %q, want frustrations", m.Deck.Current())
	}
	if m.Frame.Slide().Title != "Why Do LLMs Frustrate Us?" {
		t.Errorf("frame title = %q", m.Frame.Slide().Title)
	}
	if !strings.Contains(a.View(), "Why Do LLMs Frustrate Us?") {
		t.Error("view should show the frustrations slide")
	}
}

func TestAppModel_ReselectIsNoOp(t *testing.T) {
	m, a := newTestApp(t, 140, 14)
	a.Update(SelectSectionMsg{ID: deck.SectionTakeaways})
	m.Frame.Scroll(PanelBody, "j")
	before := m.Frame.Offset(PanelBody)
	if before == 0 {
		t.Fatal("expected body to scroll")
	}
	a.Update(SelectSectionMsg{ID: deck.SectionTakeaways})
	if got := m.Frame.Offset(PanelBody); got != before {
		t.Errorf("reselecting the current section reset scroll: %d -> %d", before, got)
	}
}

func TestAppModel_UnknownSelectKeepsCurrent(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	a.Update(SelectSectionMsg{ID: deck.SectionDemo})
	a.Update(SelectSectionMsg{ID: "bogus"})
	if m.Deck.Current() != deck.SectionDemo {
		t.Errorf("current = %q after bogus select, want demo", m.Deck.Current())
	}
}

func TestAppModel_NextPrevClamp(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	press(a, "p")
	if m.Deck.Current() != deck.SectionIntro {
		t.Errorf("prev on first = %q, want intro", m.Deck.Current())
	}
	press(a, "n")
	press(a, "right")
	press(a, "l")
	if m.Deck.Current() != deck.SectionMentalShift {
		t.Errorf("after three nexts = %q, want mental-shift", m.Deck.Current())
	}
	press(a, "left")
	if m.Deck.Current() != deck.SectionFrustrations {
		t.Errorf("after left = %q, want frustrations", m.Deck.Current())
	}
	press(a, "G")
	press(a, "n")
	if m.Deck.Current() != deck.SectionTakeaways {
		t.Errorf("next on last = %q, want takeaways", m.Deck.Current())
	}
	press(a, "home")
	if m.Deck.Current() != deck.SectionIntro {
		t.Errorf("home = %q, want intro", m.Deck.Current())
	}
}

func TestAppModel_NumberKeysJumpToBadge(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	for i, s := range deck.Sections() {
		press(a, deck.Badge(i)[1:])
		if m.Deck.Current() != s.ID {
			t.Errorf("key %d selected %q, want %q", i+1, m.Deck.Current(), s.ID)
		}
	}
}

func TestAppModel_QuitKeys(t *testing.T) {
	_, a := newTestApp(t, 140, 40)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := a.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
	a.Update(keyMsg(" "))
	_, cmd := a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("SPC q: expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("SPC q: expected tea.QuitMsg")
	}
}

func TestAppModel_SwitcherFlow(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	press(a, " ")
	press(a, "s")
	if m.Overlays.Len() != 1 {
		t.Fatalf("expected switcher overlay, got %d overlays", m.Overlays.Len())
	}
	top, _ := m.Overlays.Peek()
	sw, ok := top.View.(*SwitcherModal)
	if !ok {
		t.Fatalf("expected SwitcherModal on overlay, got %T", top.View)
	}
	if !strings.Contains(a.View(), "Go to section") {
		t.Error("view should show the switcher")
	}

	press(a, "down")
	press(a, "down")
	if id, _ := sw.Selected(); id != deck.SectionFrustrations {
		t.Fatalf("cursor on %q, want frustrations", id)
	}
	press(a, "enter")
	if m.Overlays.Len() != 0 {
		t.Errorf("switcher should close after enter, %d overlays open", m.Overlays.Len())
	}
	if m.Deck.Current() != deck.SectionFrustrations {
		t.Errorf("current = %q, want frustrations", m.Deck.Current())
	}
}

func TestAppModel_SwitcherEscDismisses(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	a.Update(ShowSwitcherMsg{})
	press(a, "esc")
	if m.Overlays.Len() != 0 {
		t.Errorf("esc should close the switcher, %d overlays open", m.Overlays.Len())
	}
	if m.Deck.Current() != deck.SectionIntro {
		t.Errorf("esc should not change the section, got %q", m.Deck.Current())
	}
}

func TestAppModel_ToggleNotes(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	press(a, "tab")
	if !m.Focus.Is(PanelNotes) {
		t.Fatalf("tab should focus notes, got %q", m.Focus.Current)
	}
	press(a, " ")
	press(a, "n")
	if m.ShowNotes {
		t.Fatal("SPC n should hide notes")
	}
	if !m.Layout().Notes.Empty() {
		t.Error("notes rect should be empty when hidden")
	}
	if !m.Focus.Is(PanelBody) {
		t.Errorf("focus should fall back to body, got %q", m.Focus.Current)
	}
	if strings.Contains(a.View(), "Set the tone") {
		t.Error("hidden notes should not render")
	}
}

func TestAppModel_WithNotesOption(t *testing.T) {
	m, _ := newTestApp(t, 140, 40, WithNotes(false))
	if m.ShowNotes || !m.Layout().Notes.Empty() {
		t.Error("WithNotes(false) should start with notes hidden")
	}
}

func TestAppModel_SidebarToggleOnlyWide(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	press(a, " ")
	press(a, "b")
	if m.ShowSidebar || !m.Layout().Sidebar.Empty() {
		t.Error("SPC b should hide the sidebar in wide layout")
	}

	m, a = newTestApp(t, 80, 40)
	press(a, " ")
	press(a, "b")
	if !m.ShowSidebar {
		t.Error("SPC b should be unbound in narrow layout")
	}
}

func TestAppModel_NarrowLayoutUsesTabs(t *testing.T) {
	m, a := newTestApp(t, 80, 40)
	if m.Mode() != LayoutNarrow {
		t.Fatalf("mode = %v, want narrow", m.Mode())
	}
	view := a.View()
	if strings.Contains(view, "INDEX") {
		t.Error("narrow layout should not render the sidebar")
	}
	if !strings.Contains(view, "Title") {
		t.Error("narrow layout should render the tab strip")
	}

	m, _ = newTestApp(t, 90, 40, WithNarrowWidth(80))
	if m.Mode() != LayoutWide {
		t.Errorf("90 columns with breakpoint 80 should be wide, got %v", m.Mode())
	}
}

func TestAppModel_ClickSidebarSelects(t *testing.T) {
	m, a := newTestApp(t, 140, 40)
	l := m.Layout()
	idx := deck.IndexOf(deck.SectionRouting)
	_, cmd := a.Update(tea.MouseMsg{
		X:      4,
		Y:      l.Sidebar.Y + sidebarListOffset + idx,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	drain(a, cmd)
	if m.Deck.Current() != deck.SectionRouting {
		t.Errorf("click selected %q, want routing", m.Deck.Current())
	}
}

func TestAppModel_ClickTabSelects(t *testing.T) {
	m, a := newTestApp(t, 80, 40)
	l := m.Layout()
	spans, _, _ := layoutTabs(m.Deck.Current(), deck.Sections(), l.Tabs.W)
	target := spans[2]
	_, cmd := a.Update(tea.MouseMsg{
		X:      l.Tabs.X + target.X0 + 1,
		Y:      l.Tabs.Y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	drain(a, cmd)
	if m.Deck.Current() != target.ID {
		t.Errorf("click selected %q, want %q", m.Deck.Current(), target.ID)
	}
}

func TestAppModel_SharedControllerObserved(t *testing.T) {
	c := deck.NewController()
	var seen []deck.SectionID
	c.Observe(func(_, to deck.SectionID) { seen = append(seen, to) })
	m, a := newTestApp(t, 140, 40, WithController(c))
	press(a, "n")
	if m.Deck != c {
		t.Fatal("WithController should use the given controller")
	}
	if len(seen) != 1 || seen[0] != deck.SectionAgenda {
		t.Errorf("external observer saw %v", seen)
	}
	if m.Frame.Slide().Title != "Agenda" {
		t.Errorf("frame should follow the controller, title %q", m.Frame.Slide().Title)
	}
}

func TestAppModel_LeaderHintsShown(t *testing.T) {
	_, a := newTestApp(t, 140, 40)
	a.Update(keyMsg(" "))
	if !containsAll(a.View(), "Go to section", "Toggle notes") {
		t.Error("leader help should list SPC commands")
	}
}
