package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	f := NewFocusManager(PanelBody, PanelNotes)
	if !f.Is(PanelBody) {
		t.Fatalf("initial focus = %q, want body", f.Current)
	}
	if got := f.Next(); got != PanelNotes {
		t.Errorf("Next = %q, want notes", got)
	}
	if got := f.Next(); got != PanelBody {
		t.Errorf("Next wraps to %q, want body", got)
	}
	if got := f.Prev(); got != PanelNotes {
		t.Errorf("Prev wraps to %q, want notes", got)
	}
}

func TestFocusManager_OnChangeOnlyOnRealChange(t *testing.T) {
	f := NewFocusManager(PanelBody, PanelNotes)
	var calls []string
	f.OnChange = func(from, to string) { calls = append(calls, from+">"+to) }

	f.SetFocus(PanelBody)
	if len(calls) != 0 {
		t.Errorf("refocusing the current panel fired OnChange: %v", calls)
	}
	f.SetFocus(PanelNotes)
	if len(calls) != 1 || calls[0] != "body>notes" {
		t.Errorf("calls = %v", calls)
	}
	if f.SetFocus("sidebar") {
		t.Error("SetFocus should reject panels outside the order")
	}
}

func TestFocusManager_SetOrderDropsMissing(t *testing.T) {
	f := NewFocusManager(PanelBody, PanelNotes)
	f.SetFocus(PanelNotes)
	f.SetOrder(PanelBody)
	if !f.Is(PanelBody) {
		t.Errorf("focus = %q after notes removed, want body", f.Current)
	}
	if got := f.Next(); got != PanelBody {
		t.Errorf("single-panel Next = %q", got)
	}
}
