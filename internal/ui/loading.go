package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/route"
)

// LoadingOverlay covers a page until its scene is ready.
type LoadingOverlay struct {
	Page    route.Page
	Gen     uint64
	Title   string
	Hint    string
	spinner spinner.Model
}

// Ensure LoadingOverlay implements View.
var _ View = (*LoadingOverlay)(nil)

// NewLoadingOverlay creates the overlay for page instance gen.
func NewLoadingOverlay(page route.Page, gen uint64, title, hint string) *LoadingOverlay {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &LoadingOverlay{Page: page, Gen: gen, Title: title, Hint: hint, spinner: s}
}

// Init implements View.
func (l *LoadingOverlay) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update implements View.
func (l *LoadingOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements View.
func (l *LoadingOverlay) View() string {
	content := l.spinner.View() + "  " + Styles.Title.Render(l.Title)
	if l.Hint != "" {
		content += "\n\n" + Styles.Muted.Render(l.Hint)
	}
	return Styles.Box.Render(content)
}
