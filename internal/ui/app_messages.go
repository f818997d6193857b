package ui

import (
	"time"

	"folio/internal/content"
	"folio/internal/route"
)

// NavigateMsg asks the router to move to Path.
type NavigateMsg struct {
	Path string
}

// BackMsg asks the router to return to the previous page (backspace).
type BackMsg struct{}

// ReplayIntroMsg goes home and plays the charge-up intro again (SPC i).
type ReplayIntroMsg struct{}

// SceneReadyMsg is sent by the backdrop loader when a page's scene has been
// built. Until then the page shows its loading overlay.
type SceneReadyMsg struct {
	Page     route.Page
	Gen      uint64 // page instance the scene was requested for
	Backdrop Backdrop
}

// ContentReloadedMsg carries the result of a content file reload. Err is set
// when the new file was rejected; the previous content stays in use.
type ContentReloadedMsg struct {
	Content *content.Content
	Err     error
}

// ContactMessage is what the contact form collects.
type ContactMessage struct {
	Name  string
	Email string
	Body  string
}

// ShowSendConfirmMsg asks the app to confirm sending a contact message.
type ShowSendConfirmMsg struct {
	Message ContactMessage
}

// ShowDiscardConfirmMsg asks the app to confirm discarding the contact form.
type ShowDiscardConfirmMsg struct{}

// ContactSubmittedMsg is sent when the user confirms a contact message.
type ContactSubmittedMsg struct {
	Message ContactMessage
}

// ContactDiscardedMsg is sent when the user confirms throwing the form away.
type ContactDiscardedMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// clockTickMsg advances the footer clock.
type clockTickMsg time.Time

// introFrameMsg advances the home intro of page instance gen.
type introFrameMsg struct {
	gen uint64
	at  time.Time
}

// typeTickMsg advances the home typewriter of page instance gen.
type typeTickMsg struct {
	gen uint64
}

// deckSettleMsg ends the deck transition seq of navigator nav.
type deckSettleMsg struct {
	nav string
	seq uint64
}

// deckFrameMsg draws the next tween frame of navigator nav.
type deckFrameMsg struct {
	nav string
}
