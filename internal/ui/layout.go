package ui

// Panel IDs.
const (
	PanelHeader  = "header"
	PanelSidebar = "sidebar"
	PanelTabs    = "tabs"
	PanelBody    = "body"
	PanelNotes   = "notes"
	PanelFooter  = "footer"
)

const (
	headerHeight      = 2 // text line + bottom rule
	footerHeight      = 1
	tabStripHeight    = 2 // pills + bottom rule
	sidebarWidth      = 38
	notesWidth        = 42
	notesHeightNarrow = 9
	minBodyWidth      = 30
	minBodyHeight     = 6
)

// Rect is a cell-aligned region of the terminal.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Panel is a named region of the screen.
type Panel struct {
	ID   string
	Rect Rect
}

// Layout is the screen geometry for one terminal size. Rendering and mouse
// hit-testing both read it, so a click always lands on what was drawn.
type Layout struct {
	Mode    LayoutMode
	Width   int
	Height  int
	Header  Rect
	Sidebar Rect
	Tabs    Rect
	Body    Rect
	Notes   Rect
	Footer  Rect
}

// computeLayout splits the terminal into panels.
func computeLayout(width, height int, mode LayoutMode, showSidebar, showNotes bool) Layout {
	l := Layout{Mode: mode, Width: width, Height: height}
	l.Header = Rect{X: 0, Y: 0, W: width, H: headerHeight}
	l.Footer = Rect{X: 0, Y: max(height-footerHeight, 0), W: width, H: footerHeight}
	mainY := headerHeight
	mainH := max(height-headerHeight-footerHeight, 0)

	switch mode {
	case LayoutNarrow:
		l.Tabs = Rect{X: 0, Y: mainY, W: width, H: tabStripHeight}
		y := mainY + tabStripHeight
		h := max(mainH-tabStripHeight, 0)
		if showNotes {
			nh := notesHeightNarrow
			if h-nh < minBodyHeight {
				nh = h / 3
			}
			l.Body = Rect{X: 0, Y: y, W: width, H: h - nh}
			l.Notes = Rect{X: 0, Y: y + h - nh, W: width, H: nh}
		} else {
			l.Body = Rect{X: 0, Y: y, W: width, H: h}
		}
	default:
		x := 0
		if showSidebar {
			l.Sidebar = Rect{X: 0, Y: mainY, W: sidebarWidth, H: mainH}
			x = sidebarWidth
		}
		rest := max(width-x, 0)
		if showNotes {
			nw := notesWidth
			if rest-nw < minBodyWidth {
				nw = rest / 3
			}
			l.Body = Rect{X: x, Y: mainY, W: rest - nw, H: mainH}
			l.Notes = Rect{X: x + rest - nw, Y: mainY, W: nw, H: mainH}
		} else {
			l.Body = Rect{X: x, Y: mainY, W: rest, H: mainH}
		}
	}
	return l
}

// Panels returns the non-empty panels, top to bottom and left to right.
func (l Layout) Panels() []Panel {
	all := []Panel{
		{ID: PanelHeader, Rect: l.Header},
		{ID: PanelSidebar, Rect: l.Sidebar},
		{ID: PanelTabs, Rect: l.Tabs},
		{ID: PanelBody, Rect: l.Body},
		{ID: PanelNotes, Rect: l.Notes},
		{ID: PanelFooter, Rect: l.Footer},
	}
	out := all[:0]
	for _, p := range all {
		if !p.Rect.Empty() {
			out = append(out, p)
		}
	}
	return out
}

// PanelAt returns the ID of the panel under (x, y), or "".
func (l Layout) PanelAt(x, y int) string {
	for _, p := range l.Panels() {
		if p.Rect.Contains(x, y) {
			return p.ID
		}
	}
	return ""
}
