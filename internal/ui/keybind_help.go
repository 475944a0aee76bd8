package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled with the deck palette.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	return h
}

// RenderKeybindHelp renders the transient box shown after the leader key:
// the keys that can follow the sequence typed so far.
func RenderKeybindHelp(h *KeyHandler, mode LayoutMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	hints := h.Registry.LeaderHints(h.Sequence(), mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	content := Styles.Hint.Render(h.Sequence()) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.Box.Render(content)
}

// footerBindings are the always-visible hints in the footer.
func footerBindings(mode LayoutMode) []key.Binding {
	b := []key.Binding{
		key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
		key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "jump")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("spc", "commands")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	if mode == LayoutNarrow {
		// Narrow terminals drop the scroll hint to keep the footer on one line.
		b = append(b[:4], b[5:]...)
	}
	return b
}
