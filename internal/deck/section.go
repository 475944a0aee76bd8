package deck

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned when an identifier is not in the registry.
var ErrUnknownSection = errors.New("unknown section")

// SectionID identifies one section of the deck.
type SectionID string

const (
	SectionIntro        SectionID = "intro"
	SectionAgenda       SectionID = "agenda"
	SectionFrustrations SectionID = "frustrations"
	SectionMentalShift  SectionID = "mental-shift"
	SectionWorkflow     SectionID = "workflow"
	SectionEmbedding    SectionID = "embedding"
	SectionRouting      SectionID = "routing"
	SectionDemo         SectionID = "demo"
	SectionTakeaways    SectionID = "takeaways"
)

// Section pairs an identifier with the label shown in navigation.
type Section struct {
	ID    SectionID
	Label string
}

// registry defines display order and badge numbering. Never mutated.
var registry = []Section{
	{ID: SectionIntro, Label: "Title"},
	{ID: SectionAgenda, Label: "Agenda"},
	{ID: SectionFrustrations, Label: "Why LLMs Frustrate Us"},
	{ID: SectionMentalShift, Label: "Deterministic vs Probabilistic"},
	{ID: SectionWorkflow, Label: "Workflow Accelerator"},
	{ID: SectionEmbedding, Label: "Embedding in Products"},
	{ID: SectionRouting, Label: "Smaller Models + Routing"},
	{ID: SectionDemo, Label: "Digital Signage Demo"},
	{ID: SectionTakeaways, Label: "Key Takeaways"},
}

// Sections returns the registry in display order.
// The returned slice is a copy; callers may modify it freely.
func Sections() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}

// Len returns the number of registered sections.
func Len() int {
	return len(registry)
}

// First returns the identifier of the first registered section.
func First() SectionID {
	return registry[0].ID
}

// At returns the section at position i (0-based).
func At(i int) (Section, bool) {
	if i < 0 || i >= len(registry) {
		return Section{}, false
	}
	return registry[i], true
}

// IndexOf returns the 0-based position of id, or -1 if id is not registered.
func IndexOf(id SectionID) int {
	for i, s := range registry {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the registered section for id.
func Lookup(id SectionID) (Section, bool) {
	i := IndexOf(id)
	if i < 0 {
		return Section{}, false
	}
	return registry[i], true
}

// Valid reports whether id is a registered section.
func Valid(id SectionID) bool {
	return IndexOf(id) >= 0
}

// Badge formats a 0-based position as the two-digit, 1-based badge shown in
// navigation ("01", "02", ...).
func Badge(i int) string {
	return fmt.Sprintf("%02d", i+1)
}

// String implements fmt.Stringer.
func (id SectionID) String() string {
	return string(id)
}

// Label returns the registry label for id, or the raw id if unregistered.
func (id SectionID) Label() string {
	if s, ok := Lookup(id); ok {
		return s.Label
	}
	return string(id)
}

// MarshalText implements encoding.TextMarshaler.
func (id SectionID) MarshalText() ([]byte, error) {
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only registered
// identifiers are accepted.
func (id *SectionID) UnmarshalText(b []byte) error {
	v := SectionID(b)
	if !Valid(v) {
		return fmt.Errorf("section %q: %w", v, ErrUnknownSection)
	}
	*id = v
	return nil
}
