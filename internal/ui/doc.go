// Package ui renders the seminar deck as a Bubble Tea program.
//
// Building blocks:
//   - AppModel: root model; owns the deck.Controller and routes input
//   - Sidebar / TabStrip: navigation surfaces, pure renders of (current, registry)
//   - SlideFrame: title, body and notes viewports for the current slide
//   - PageFrame: header branding and footer key help
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed commands
//   - OverlayStack: modal views (the section switcher) that take input first
//   - FocusManager: which pane receives scroll keys
package ui
