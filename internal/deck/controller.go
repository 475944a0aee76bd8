package deck

import "fmt"

// Observer is notified after the selection moves from one section to another.
type Observer func(from, to SectionID)

// Controller owns the current selection. It is not safe for concurrent use;
// each interactive session owns its own Controller.
type Controller struct {
	current   SectionID
	observers []Observer
}

// NewController returns a controller positioned on the first section.
func NewController() *Controller {
	return &Controller{current: First()}
}

// Observe registers fn to run after every transition. Re-selecting the
// current section is not a transition.
func (c *Controller) Observe(fn Observer) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// Current returns the selected section.
func (c *Controller) Current() SectionID {
	return c.current
}

// Select makes id the current section. An unregistered id is rejected and
// leaves the selection unchanged.
func (c *Controller) Select(id SectionID) error {
	if !Valid(id) {
		return fmt.Errorf("select %q: %w", id, ErrUnknownSection)
	}
	if id == c.current {
		return nil
	}
	from := c.current
	c.current = id
	for _, fn := range c.observers {
		fn(from, id)
	}
	return nil
}

// SelectIndex selects the section at 0-based position i.
func (c *Controller) SelectIndex(i int) error {
	s, ok := At(i)
	if !ok {
		return fmt.Errorf("select index %d: %w", i, ErrUnknownSection)
	}
	return c.Select(s.ID)
}

// Next advances to the following section. Returns false at the last one.
func (c *Controller) Next() bool {
	return c.step(1)
}

// Prev moves to the preceding section. Returns false at the first one.
func (c *Controller) Prev() bool {
	return c.step(-1)
}

// Home selects the first section.
func (c *Controller) Home() bool {
	return c.jump(0)
}

// End selects the last section.
func (c *Controller) End() bool {
	return c.jump(Len() - 1)
}

func (c *Controller) step(delta int) bool {
	return c.jump(IndexOf(c.current) + delta)
}

func (c *Controller) jump(i int) bool {
	s, ok := At(i)
	if !ok || s.ID == c.current {
		return false
	}
	// s comes from the registry, so Select cannot fail here.
	_ = c.Select(s.ID)
	return true
}

// Resolve returns the slide for id, falling back to the introductory slide.
func (c *Controller) Resolve(id SectionID) Slide {
	return Resolve(id)
}

// Slide returns the slide for the current selection.
func (c *Controller) Slide() Slide {
	return Resolve(c.current)
}
