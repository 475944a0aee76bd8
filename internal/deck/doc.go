// Package deck holds the seminar's section registry, the static slide
// content, and the Controller that owns the current selection.
//
// The registry is a closed, ordered list. Every identifier in it resolves to
// exactly one slide; anything else resolves to the introductory slide.
package deck
