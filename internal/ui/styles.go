package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"seminar/internal/deck"
)

// Palette. 256-color codes so the deck renders the same over SSH.
const (
	ColorAccent    = "43"  // Teal - titles, subtitles, active navigation
	ColorHighlight = "86"  // Light teal - focused borders
	ColorWarning   = "214" // Amber - notes badge, warning callouts
	ColorDanger    = "203" // Red - "bad" columns
	ColorSuccess   = "78"  // Green - "good" columns
	ColorFuchsia   = "176" // Probabilistic column
	ColorMuted     = "244" // Dimmed text, hints
	ColorText      = "252" // Body text
	ColorBorder    = "238" // Inactive borders
	ColorSurface   = "235" // Badge background
)

// Styles contains shared style definitions used across the frame and surfaces.
var Styles = struct {
	Brand    lipgloss.Style // Header product name
	Tagline  lipgloss.Style // Header right-hand text
	Title    lipgloss.Style // Slide title
	Subtitle lipgloss.Style // Slide subtitle
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Heading  lipgloss.Style // Column and card headings
	Badge    lipgloss.Style // Numeric badge in navigation
	Active   lipgloss.Style // Active navigation entry
	Inactive lipgloss.Style // Other navigation entries
	Pill     lipgloss.Style // Tab strip entry
	PillOn   lipgloss.Style // Active tab strip entry
	NotesTag lipgloss.Style // "Notes" label
	Box      lipgloss.Style // Modal box
}{
	Brand:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	Tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
	Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color(ColorSurface)),
	Active: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Pill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	PillOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorSurface)),
	NotesTag: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
}

// toneColor maps a content tone to its accent color.
func toneColor(t deck.Tone) lipgloss.Color {
	switch t {
	case deck.ToneInfo:
		return lipgloss.Color(ColorAccent)
	case deck.ToneWarn:
		return lipgloss.Color(ColorWarning)
	case deck.ToneGood:
		return lipgloss.Color(ColorSuccess)
	case deck.ToneBad:
		return lipgloss.Color(ColorDanger)
	case deck.ToneAccent:
		return lipgloss.Color(ColorFuchsia)
	default:
		return lipgloss.Color(ColorBorder)
	}
}

// paneBorder returns the border style for a pane, highlighted when focused.
func paneBorder(focused bool) lipgloss.Style {
	c := ColorBorder
	if focused {
		c = ColorHighlight
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c))
}

// newCompactListDelegate returns a list delegate with zero spacing and the
// navigation styles.
func newCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Active.Foreground(lipgloss.Color(ColorAccent)).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle
	d.Styles.NormalTitle = Styles.Inactive.PaddingLeft(1)
	d.Styles.NormalDesc = d.Styles.NormalTitle
	return d
}
