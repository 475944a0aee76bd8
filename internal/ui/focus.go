package ui

import "slices"

// FocusManager tracks which panel receives scroll input.
type FocusManager struct {
	Current  string   // ID of the focused panel
	Order    []string // rotation order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus to the following panel, wrapping around.
func (f *FocusManager) Next() string {
	return f.rotate(1)
}

// Prev moves focus to the preceding panel, wrapping around.
func (f *FocusManager) Prev() string {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 {
		idx = 0
		delta = 0
	}
	next := (idx + delta + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// SetOrder replaces the rotation order. If the focused panel is no longer
// present, focus moves to the first entry.
func (f *FocusManager) SetOrder(order ...string) {
	f.Order = order
	if slices.Contains(order, f.Current) {
		return
	}
	if len(order) == 0 {
		f.set("")
		return
	}
	f.set(order[0])
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
