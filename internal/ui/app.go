package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"seminar/internal/deck"
)

// DefaultNarrowWidth is the terminal width below which the tab strip
// replaces the sidebar.
const DefaultNarrowWidth = 100

// AppModel is the root model: it owns the deck controller for one session
// and composes the page frame, navigation surfaces and slide frame.
type AppModel struct {
	Deck        *deck.Controller
	Frame       *SlideFrame
	KeyHandler  *KeyHandler
	Focus       *FocusManager
	Overlays    OverlayStack
	Help        help.Model
	ShowNotes   bool
	ShowSidebar bool
	NarrowWidth int
	Width       int
	Height      int

	layout Layout
	ctx    context.Context
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithController uses c instead of a fresh controller. Hosts pass their own
// when they observe transitions too.
func WithController(c *deck.Controller) Option {
	return func(m *AppModel) { m.Deck = c }
}

// WithNarrowWidth sets the layout breakpoint. Non-positive values keep the
// default.
func WithNarrowWidth(w int) Option {
	return func(m *AppModel) {
		if w > 0 {
			m.NarrowWidth = w
		}
	}
}

// WithNotes sets whether the presenter notes start visible.
func WithNotes(show bool) Option {
	return func(m *AppModel) { m.ShowNotes = show }
}

// NewAppModel creates the root model. The logger is taken from ctx.
func NewAppModel(ctx context.Context, opts ...Option) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &AppModel{
		Frame:       NewSlideFrame(),
		Help:        newHelpModel(),
		ShowNotes:   true,
		ShowSidebar: true,
		NarrowWidth: DefaultNarrowWidth,
		ctx:         ctx,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.Deck == nil {
		m.Deck = deck.NewController()
	}
	m.Focus = NewFocusManager(PanelBody, PanelNotes)
	m.KeyHandler = NewKeyHandler(defaultBindings())
	m.Deck.Observe(m.onTransition)
	m.Frame.Load(m.Deck.Slide())
	m.relayout()
	return m
}

func defaultBindings() *KeybindRegistry {
	reg := NewKeybindRegistry()
	next := func() tea.Msg { return StepSectionMsg{Delta: 1} }
	prev := func() tea.Msg { return StepSectionMsg{Delta: -1} }
	first := func() tea.Msg { return JumpEdgeMsg{} }
	last := func() tea.Msg { return JumpEdgeMsg{Last: true} }
	for _, k := range []string{"n", "right", "l"} {
		reg.BindWithDesc(k, next, "Next section")
	}
	for _, k := range []string{"p", "left", "h"} {
		reg.BindWithDesc(k, prev, "Previous section")
	}
	reg.BindWithDesc("g", first, "First section")
	reg.BindWithDesc("home", first, "First section")
	reg.BindWithDesc("G", last, "Last section")
	reg.BindWithDesc("end", last, "Last section")
	for i := 0; i < min(deck.Len(), 9); i++ {
		s, _ := deck.At(i)
		reg.BindWithDesc(strconv.Itoa(i+1), selectCmd(s.ID), s.Label)
	}
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC s", func() tea.Msg { return ShowSwitcherMsg{} }, "Go to section")
	reg.BindWithDesc("SPC n", func() tea.Msg { return ToggleNotesMsg{} }, "Toggle notes")
	reg.BindForModes("SPC b", func() tea.Msg { return ToggleSidebarMsg{} }, "Toggle sidebar", []LayoutMode{LayoutWide})
	return reg
}

func (m *AppModel) log() pslog.Logger {
	return pslog.Ctx(m.ctx)
}

// Mode returns the layout for the current terminal width.
func (m *AppModel) Mode() LayoutMode {
	return layoutFor(m.Width, m.NarrowWidth)
}

// Layout returns the geometry of the last render.
func (m *AppModel) Layout() Layout {
	return m.layout
}

func (m *AppModel) onTransition(from, to deck.SectionID) {
	m.Frame.Load(m.Deck.Resolve(to))
	m.log().Debug("deck select", "from", from, "to", to)
}

func (m *AppModel) relayout() {
	m.layout = computeLayout(m.Width, m.Height, m.Mode(), m.ShowSidebar, m.ShowNotes)
	m.Frame.SetSize(m.layout.Body, m.layout.Notes)
	if m.ShowNotes {
		m.Focus.SetOrder(PanelBody, PanelNotes)
	} else {
		m.Focus.SetOrder(PanelBody)
	}
}

func (m *AppModel) selectSection(id deck.SectionID) {
	if err := m.Deck.Select(id); err != nil {
		m.log().Warn("select rejected", "id", id, "err", err)
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.relayout()
		return a, nil
	case SelectSectionMsg:
		a.selectSection(msg.ID)
		return a, nil
	case StepSectionMsg:
		if msg.Delta < 0 {
			a.Deck.Prev()
		} else {
			a.Deck.Next()
		}
		return a, nil
	case JumpEdgeMsg:
		if msg.Last {
			a.Deck.End()
		} else {
			a.Deck.Home()
		}
		return a, nil
	case ToggleNotesMsg:
		a.ShowNotes = !a.ShowNotes
		a.relayout()
		return a, nil
	case ToggleSidebarMsg:
		a.ShowSidebar = !a.ShowSidebar
		a.relayout()
		return a, nil
	case ShowSwitcherMsg:
		sw := NewSwitcherModal(a.Deck.Current(), deck.Sections())
		a.Overlays.Push(Overlay{View: sw})
		return a, sw.Init()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
			return a, cmd
		}
		switch msg.String() {
		case "tab":
			a.Focus.Next()
		case "shift+tab":
			a.Focus.Prev()
		default:
			a.Frame.Scroll(a.Focus.Current, msg.String())
		}
		return a, nil
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
		return a, a.handleMouse(msg)
	}

	// Async list messages (filtering) belong to the open modal.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, nil
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	panel := m.layout.PanelAt(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 3
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -3
		}
		m.Frame.Wheel(panel, delta)
		return nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	sections := deck.Sections()
	switch panel {
	case PanelSidebar:
		if id, ok := sidebarHit(m.layout, sections, msg.X, msg.Y); ok {
			return selectCmd(id)
		}
	case PanelTabs:
		if id, ok := tabHit(m.layout, m.Deck.Current(), sections, msg.X, msg.Y); ok {
			return selectCmd(id)
		}
	case PanelBody, PanelNotes:
		m.Focus.SetFocus(panel)
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	l := a.layout
	current := a.Deck.Current()
	sections := deck.Sections()

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		a.Frame.RenderBody(a.Focus.Is(PanelBody)),
		a.Frame.RenderNotes(a.Focus.Is(PanelNotes)),
	)
	if !l.Notes.Empty() && l.Mode == LayoutNarrow {
		panes = lipgloss.JoinVertical(lipgloss.Left,
			a.Frame.RenderBody(a.Focus.Is(PanelBody)),
			a.Frame.RenderNotes(a.Focus.Is(PanelNotes)),
		)
	}

	var main string
	switch l.Mode {
	case LayoutNarrow:
		main = lipgloss.JoinVertical(lipgloss.Left, RenderTabStrip(current, sections, l.Tabs), panes)
	default:
		if l.Sidebar.Empty() {
			main = panes
		} else {
			main = lipgloss.JoinHorizontal(lipgloss.Top, RenderSidebar(current, sections, l.Sidebar), panes)
		}
	}
	main = lipgloss.NewStyle().Height(max(a.Height-headerHeight-footerHeight, 0)).MaxHeight(max(a.Height-headerHeight-footerHeight, 0)).Render(main)

	screen := RenderHeader(a.Width) + "\n" + main + "\n" + RenderFooter(a.Help, l.Mode, current, a.Width)
	if hints := RenderKeybindHelp(a.KeyHandler, l.Mode); hints != "" {
		screen = overlayBottom(screen, hints)
	}
	return screen
}

// overlayBottom draws box over the last lines of screen, left-aligned.
func overlayBottom(screen, box string) string {
	lines := strings.Split(screen, "\n")
	boxLines := strings.Split(box, "\n")
	start := max(len(lines)-len(boxLines), 0)
	for i, bl := range boxLines {
		if start+i < len(lines) {
			lines[start+i] = bl
		}
	}
	return strings.Join(lines, "\n")
}
