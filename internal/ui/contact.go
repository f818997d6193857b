package ui

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
)

const (
	fieldName  = "name"
	fieldEmail = "email"
	fieldBody  = "body"
)

// ContactFormView is the contact form. It only drafts a message; nothing is
// delivered.
type ContactFormView struct {
	name  textinput.Model
	email textinput.Model
	body  textarea.Model
	focus *FocusRing[string]

	contact content.Contact
	err     string
	drafted string // mailto link of the last confirmed message
	width   int
}

// Ensure ContactFormView implements View and InputCapturer.
var (
	_ View          = (*ContactFormView)(nil)
	_ InputCapturer = (*ContactFormView)(nil)
)

// NewContactFormView creates an empty form with the name field focused.
func NewContactFormView(c content.Contact) *ContactFormView {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "  "
	name.CharLimit = 80
	name.Width = 40

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "  "
	email.CharLimit = 120
	email.Width = 40

	body := textarea.New()
	body.Placeholder = "Say hello..."
	body.ShowLineNumbers = false
	body.CharLimit = 2000
	body.SetWidth(44)
	body.SetHeight(6)

	v := &ContactFormView{name: name, email: email, body: body, contact: c, width: 80}
	v.focus = NewFocusRing(v.applyFocus, fieldName, fieldEmail, fieldBody)
	return v
}

func (v *ContactFormView) applyFocus(field string) {
	v.name.Blur()
	v.email.Blur()
	v.body.Blur()
	switch field {
	case fieldName:
		v.name.Focus()
	case fieldEmail:
		v.email.Focus()
	case fieldBody:
		v.body.Focus()
	}
}

// CapturesInput implements InputCapturer; the form always takes text.
func (v *ContactFormView) CapturesInput() bool { return true }

// Focused returns the focused field.
func (v *ContactFormView) Focused() string { return v.focus.Current() }

// Dirty reports whether anything has been typed.
func (v *ContactFormView) Dirty() bool {
	return v.name.Value() != "" || v.email.Value() != "" || v.body.Value() != ""
}

// Message returns the form contents, trimmed.
func (v *ContactFormView) Message() ContactMessage {
	return ContactMessage{
		Name:  strings.TrimSpace(v.name.Value()),
		Email: strings.TrimSpace(v.email.Value()),
		Body:  strings.TrimSpace(v.body.Value()),
	}
}

// Reset clears every field.
func (v *ContactFormView) Reset() {
	v.name.Reset()
	v.email.Reset()
	v.body.Reset()
	v.err = ""
	v.focus.Focus(fieldName)
}

// Drafted records a confirmed message and clears the form.
func (v *ContactFormView) Drafted(msg ContactMessage) {
	v.Reset()
	v.drafted = mailtoLink(recipient(v.contact), msg)
}

// Init implements View.
func (v *ContactFormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *ContactFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.focus.Next()
			return v, nil
		case "shift+tab":
			v.focus.Prev()
			return v, nil
		case "esc":
			if v.Dirty() {
				return v, func() tea.Msg { return ShowDiscardConfirmMsg{} }
			}
			return v, navigateCmd("/contact")
		case "ctrl+s":
			return v, v.submit()
		case "enter":
			if !v.focus.Is(fieldBody) {
				v.focus.Next()
				return v, nil
			}
		}
	}

	var cmd tea.Cmd
	switch v.focus.Current() {
	case fieldName:
		v.name, cmd = v.name.Update(msg)
	case fieldEmail:
		v.email, cmd = v.email.Update(msg)
	case fieldBody:
		v.body, cmd = v.body.Update(msg)
	}
	return v, cmd
}

func (v *ContactFormView) submit() tea.Cmd {
	m := v.Message()
	if err := validateMessage(m); err != nil {
		v.err = err.Error()
		return nil
	}
	v.err = ""
	return func() tea.Msg { return ShowSendConfirmMsg{Message: m} }
}

func validateMessage(m ContactMessage) error {
	if m.Name == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("email %q is not valid", m.Email)
	}
	if m.Body == "" {
		return errors.New("message is empty")
	}
	return nil
}

// recipient is the address behind the first mailto link.
func recipient(c content.Contact) string {
	for _, l := range c.Links {
		if addr, ok := strings.CutPrefix(l.URL, "mailto:"); ok {
			return addr
		}
	}
	return ""
}

func mailtoLink(to string, m ContactMessage) string {
	subject := mailtoEscape("Hello from " + m.Name)
	body := mailtoEscape(m.Body + "\n\n" + m.Name + " <" + m.Email + ">")
	return "mailto:" + to + "?subject=" + subject + "&body=" + body
}

// mailtoEscape is query escaping with %20 for spaces, which mail clients
// expect.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// View implements View.
func (v *ContactFormView) View() string {
	field := func(label, id, input string) string {
		style := Styles.Muted
		if v.focus.Is(id) {
			style = Styles.Selected
		}
		return style.Render(label) + "\n" + input
	}
	form := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Say hello"),
		Styles.Muted.Render(v.contact.Intro),
		"",
		field("Name", fieldName, v.name.View()),
		"",
		field("Email", fieldEmail, v.email.View()),
		"",
		field("Message", fieldBody, v.body.View()),
	)
	if v.err != "" {
		form += "\n\n" + Styles.TitleWarning.Render(v.err)
	}
	if v.drafted != "" {
		form += "\n\n" + Styles.Section.Render("Drafted. Open it in your mail client:") + "\n" +
			Styles.Muted.Render(v.drafted)
	}
	form += "\n\n" + Styles.Hint.Render("tab: next field  ctrl+s: send  esc: back")

	var links []string
	links = append(links, Styles.Section.Render("Elsewhere"), "")
	for _, l := range v.contact.Links {
		links = append(links, Styles.Normal.Render(l.Label), Styles.Muted.Render(l.URL), "")
	}
	side := lipgloss.NewStyle().MarginLeft(4).Render(lipgloss.JoinVertical(lipgloss.Left, links...))
	if v.width < 90 {
		return form + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, links...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, form, side)
}
