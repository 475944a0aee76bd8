package ui

// LayoutMode selects which navigation surface is shown.
type LayoutMode int

const (
	LayoutWide   LayoutMode = iota // sidebar + slide + notes column
	LayoutNarrow                   // tab strip above slide, notes below
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutWide:
		return "Wide"
	case LayoutNarrow:
		return "Narrow"
	default:
		return "Unknown"
	}
}

// layoutFor picks the layout for a terminal width. A zero width (no
// WindowSizeMsg yet) is treated as wide.
func layoutFor(width, narrowWidth int) LayoutMode {
	if width > 0 && width < narrowWidth {
		return LayoutNarrow
	}
	return LayoutWide
}
