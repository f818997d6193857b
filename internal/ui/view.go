package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a page or overlay with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Unmounter is implemented by views that hold resources which must be released
// when the user navigates away.
type Unmounter interface {
	Unmount()
}

// InputCapturer is implemented by views that take free text. While
// CapturesInput returns true, single-key bindings are not dispatched.
type InputCapturer interface {
	CapturesInput() bool
}
