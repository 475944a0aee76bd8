package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"seminar/internal/deck"
	"seminar/internal/ui/textutil"
)

const (
	notesCaption  = "Seminar notes for presenter, not visible to audience"
	columnGap     = 3
	minColumnW    = 26
	minCardW      = 28
	maxCardsInRow = 3
)

// SlideFrame renders one slide: a fixed title block over a scrollable body,
// and the presenter notes in a second scrollable pane.
type SlideFrame struct {
	slide deck.Slide
	body  viewport.Model
	notes viewport.Model

	bodyRect  Rect
	notesRect Rect
}

// NewSlideFrame creates an empty frame. Call SetSize and Load before View.
func NewSlideFrame() *SlideFrame {
	return &SlideFrame{
		body:  viewport.New(0, 0),
		notes: viewport.New(0, 0),
	}
}

// Load shows s and scrolls both panes back to the top.
func (f *SlideFrame) Load(s deck.Slide) {
	f.slide = s
	f.SetSize(f.bodyRect, f.notesRect)
	f.body.GotoTop()
	f.notes.GotoTop()
}

// Slide returns the slide currently shown.
func (f *SlideFrame) Slide() deck.Slide {
	return f.slide
}

// SetSize places the panes. An empty notes rect hides the notes pane.
func (f *SlideFrame) SetSize(body, notes Rect) {
	f.bodyRect = body
	f.notesRect = notes

	bw, bh := paneInner(body)
	f.body.Width = bw
	f.body.Height = max(bh-f.titleHeight(), 0)

	nw, nh := paneInner(notes)
	f.notes.Width = nw
	f.notes.Height = max(nh-2, 0) // caption + blank
	f.refresh()
}

// paneInner returns the usable content size of a bordered pane with one
// column of horizontal padding on each side.
func paneInner(r Rect) (int, int) {
	return max(r.W-4, 0), max(r.H-2, 0)
}

func (f *SlideFrame) titleHeight() int {
	if f.slide.Subtitle != "" {
		return 3
	}
	return 2
}

func (f *SlideFrame) refresh() {
	f.body.SetContent(renderBlocks(f.slide.Body, f.body.Width))
	f.notes.SetContent(renderNotes(f.slide.Notes, f.notes.Width))
}

// Scroll applies a scroll key to the given pane. Returns false if the key is
// not a scroll key.
func (f *SlideFrame) Scroll(panel, key string) bool {
	vp := f.pane(panel)
	if vp == nil {
		return false
	}
	switch key {
	case "j", "down":
		vp.ScrollDown(1)
	case "k", "up":
		vp.ScrollUp(1)
	case "ctrl+d":
		vp.HalfPageDown()
	case "ctrl+u":
		vp.HalfPageUp()
	case "pgdown":
		vp.PageDown()
	case "pgup":
		vp.PageUp()
	default:
		return false
	}
	return true
}

// Wheel scrolls the given pane by delta lines (negative is up).
func (f *SlideFrame) Wheel(panel string, delta int) {
	vp := f.pane(panel)
	if vp == nil {
		return
	}
	if delta < 0 {
		vp.ScrollUp(-delta)
	} else {
		vp.ScrollDown(delta)
	}
}

// Offset returns the scroll offset of a pane.
func (f *SlideFrame) Offset(panel string) int {
	if vp := f.pane(panel); vp != nil {
		return vp.YOffset
	}
	return 0
}

func (f *SlideFrame) pane(panel string) *viewport.Model {
	switch panel {
	case PanelBody:
		return &f.body
	case PanelNotes:
		return &f.notes
	}
	return nil
}

// RenderBody draws the body pane into its rect.
func (f *SlideFrame) RenderBody(focused bool) string {
	r := f.bodyRect
	if r.Empty() {
		return ""
	}
	w, _ := paneInner(r)
	head := []string{Styles.Title.Foreground(lipgloss.Color(ColorAccent)).Render(textutil.Truncate(f.slide.Title, w))}
	if f.slide.Subtitle != "" {
		head = append(head, Styles.Subtitle.Render(textutil.Truncate(f.slide.Subtitle, w)))
	}
	head = append(head, "")
	content := strings.Join(head, "\n") + "\n" + f.body.View()
	return pane(r, focused, content)
}

// RenderNotes draws the notes pane into its rect.
func (f *SlideFrame) RenderNotes(focused bool) string {
	r := f.notesRect
	if r.Empty() {
		return ""
	}
	w, _ := paneInner(r)
	tag := Styles.NotesTag.Render("Notes")
	caption := Styles.Muted.Render(textutil.Truncate(notesCaption, max(w-textutil.StyledWidth(tag)-1, 0)))
	content := tag + " " + caption + "\n\n" + f.notes.View()
	return pane(r, focused, content)
}

func pane(r Rect, focused bool, content string) string {
	return paneBorder(focused).
		Padding(0, 1).
		Width(max(r.W-2, 0)).
		Height(max(r.H-2, 0)).
		MaxHeight(r.H).
		Render(content)
}

func renderNotes(notes []string, width int) string {
	if width <= 0 {
		return ""
	}
	style := Styles.Normal.Width(width)
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, style.Render(n))
	}
	return strings.Join(out, "\n\n")
}

// renderBlocks lays out body content at the given width, one blank line
// between blocks.
func renderBlocks(blocks []deck.Block, width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if s := renderBlock(b, width); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n\n")
}

func renderBlock(b deck.Block, width int) string {
	switch b.Kind {
	case deck.BlockParagraph:
		style := Styles.Normal
		if b.Muted {
			style = Styles.Muted.Italic(true)
		}
		return style.Width(width).Render(b.Text)
	case deck.BlockBullets:
		marker := b.Marker
		if marker == "" {
			marker = "•"
		}
		markers := make([]string, len(b.Items))
		for i := range b.Items {
			markers[i] = marker
		}
		return renderList(markers, b.Items, b.Tone, width)
	case deck.BlockNumbered:
		markers := make([]string, len(b.Items))
		for i := range b.Items {
			markers[i] = strconv.Itoa(i+1) + "."
		}
		return renderList(markers, b.Items, b.Tone, width)
	case deck.BlockCallout:
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(toneColor(b.Tone)).
			Foreground(lipgloss.Color(ColorText)).
			Bold(true).
			PaddingLeft(1).
			Width(max(width-1, 1)).
			Render(b.Text)
	case deck.BlockCode:
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(toneColor(b.Tone)).
			Foreground(lipgloss.Color(ColorMuted)).
			PaddingLeft(1).
			Width(max(width-1, 1)).
			Render(b.Text)
	case deck.BlockColumns:
		return renderColumns(b.Columns, width)
	case deck.BlockCards:
		return renderCards(b.Cards, width)
	case deck.BlockTimeline:
		return renderTimeline(b.Timeline, width)
	}
	return ""
}

// renderList draws items with a hanging indent after each marker.
func renderList(markers, items []string, tone deck.Tone, width int) string {
	mw := 0
	for _, m := range markers {
		mw = max(mw, textutil.Width(m))
	}
	markerColor := toneColor(tone)
	if tone == deck.ToneNeutral {
		markerColor = lipgloss.Color(ColorAccent)
	}
	mstyle := lipgloss.NewStyle().Foreground(markerColor).Width(mw + 1)
	istyle := Styles.Normal.Width(max(width-mw-1, 1))

	rows := make([]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, mstyle.Render(markers[i]), istyle.Render(item)))
	}
	return strings.Join(rows, "\n")
}

func renderColumnBody(c deck.Column, width int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(columnColor(c.Tone)).Render(c.Heading)
	if c.Tag != "" {
		tag := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSurface)).
			Background(columnColor(c.Tone)).
			Render(" " + c.Tag + " ")
		heading = tag + " " + heading
	}
	heading = lipgloss.NewStyle().Width(width).Render(heading)
	return heading + "\n\n" + renderBlocks(c.Blocks, width)
}

func columnColor(t deck.Tone) lipgloss.Color {
	if t == deck.ToneNeutral {
		return lipgloss.Color(ColorAccent)
	}
	return toneColor(t)
}

// renderColumns places columns side by side when they fit at a readable
// width and stacks them otherwise.
func renderColumns(cols []deck.Column, width int) string {
	n := len(cols)
	if n == 0 {
		return ""
	}
	colW := (width - columnGap*(n-1)) / n
	if colW < minColumnW {
		parts := make([]string, 0, n)
		for _, c := range cols {
			parts = append(parts, renderColumnBody(c, width))
		}
		return strings.Join(parts, "\n\n")
	}
	gap := strings.Repeat(" ", columnGap)
	parts := make([]string, 0, 2*n-1)
	for i, c := range cols {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, lipgloss.NewStyle().Width(colW).Render(renderColumnBody(c, colW)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderCards draws a grid of bordered tiles, up to three per row.
func renderCards(cards []deck.Card, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max(min(width/minCardW, maxCardsInRow), 1)
	cardW := (width - (perRow - 1)) / perRow
	style := paneBorder(false).Padding(0, 1).Width(max(cardW-2, 1))

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, " ")
			}
			c := cards[i]
			text := Styles.Heading.Render(c.Title) + "\n" + Styles.Muted.Render(c.Body)
			row = append(row, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func renderTimeline(entries []deck.TimelineEntry, width int) string {
	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		num := Styles.Badge.Render(" " + deck.Badge(i) + " ")
		t := Styles.Muted.Render(e.Time)
		avail := width - textutil.StyledWidth(num) - textutil.StyledWidth(t) - 2
		label := Styles.Normal.Render(textutil.Truncate(e.Label, max(avail, 1)))
		rows = append(rows, textutil.SpaceBetween(num+" "+label, t, width))
	}
	return strings.Join(rows, "\n")
}
