package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string // Optional details shown under the label
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    Styles.Box,
		titleStyle:  Styles.Title,
		detailStyle: Styles.Muted,
	}
}

// WithDetails adds details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewSendMessageConfirmModal asks before handing a contact message to the mail
// client.
func NewSendMessageConfirmModal(msg ContactMessage) *ConfirmModal {
	return NewConfirmModal(
		"Send message?",
		fmt.Sprintf("From: %s <%s>", msg.Name, msg.Email),
		func() tea.Msg { return ContactSubmittedMsg{Message: msg} },
	).WithDetails(fmt.Sprintf("%d characters", len([]rune(msg.Body))))
}

// NewDiscardMessageConfirmModal asks before throwing away a half-written
// message.
func NewDiscardMessageConfirmModal() *ConfirmModal {
	m := NewConfirmModal(
		"Discard message?",
		"What you typed will be lost.",
		func() tea.Msg { return ContactDiscardedMsg{} },
	)
	m.boxStyle = Styles.BoxDanger
	m.titleStyle = Styles.TitleWarning
	m.detailStyle = Styles.Details
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}
