// Package ui is the terminal front end of folio, built on Bubble Tea.
//
// Core abstractions:
//   - View: A page or overlay with its own model, update, view (Elm-style)
//   - AppModel: Owns the router, the content and one View for the current page
//   - OverlayStack: Loading screens and modals drawn over the page
//   - FocusRing: Rotates focus across form fields
//   - KeybindRegistry: Leader-key (SPC) page jumps and global keys
//
// All timers are tea.Tick commands; no state is touched outside Update.
package ui
