package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// MarkdownView shows a markdown document in a scrollable viewport.
type MarkdownView struct {
	source   string
	viewport viewport.Model
	width    int
	rendered string
}

// Ensure MarkdownView implements View.
var _ View = (*MarkdownView)(nil)

// NewMarkdownView creates a document page.
func NewMarkdownView(source string) *MarkdownView {
	m := &MarkdownView{source: source, viewport: viewport.New(80, 20)}
	m.render(80)
	return m
}

// Init implements View.
func (m *MarkdownView) Init() tea.Cmd {
	return nil
}

// render re-renders the document wrapped to width. When glamour fails the raw
// source is shown.
func (m *MarkdownView) render(width int) {
	m.width = width
	out := m.source
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err == nil {
		if s, err := r.Render(m.source); err == nil {
			out = s
		}
	}
	m.rendered = strings.TrimRight(out, "\n")
	m.viewport.SetContent(m.rendered)
}

// Rendered returns the document as last rendered.
func (m *MarkdownView) Rendered() string { return m.rendered }

// Update implements View.
func (m *MarkdownView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		if msg.Width != m.width {
			m.render(msg.Width)
		}
		return m, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements View.
func (m *MarkdownView) View() string {
	return m.viewport.View()
}
