package ui

import (
	"strings"
	"testing"

	"folio/internal/content"
)

func testContact() content.Contact {
	return content.Contact{
		Intro: "Write to me.",
		Links: []content.Social{
			{Label: "github", URL: "https://github.com/someone"},
			{Label: "email", URL: "mailto:me@example.com"},
		},
	}
}

func TestContactForm_TabRotatesFocus(t *testing.T) {
	f := NewContactFormView(testContact())
	if f.Focused() != fieldName {
		t.Fatalf("initial focus = %q", f.Focused())
	}
	if !f.CapturesInput() {
		t.Error("the form captures input")
	}

	want := []string{fieldEmail, fieldBody, fieldName}
	for _, w := range want {
		f.Update(keyMsg("tab"))
		if f.Focused() != w {
			t.Errorf("focus = %q, want %q", f.Focused(), w)
		}
	}
	f.Update(keyMsg("shift+tab"))
	if f.Focused() != fieldBody {
		t.Errorf("shift+tab: focus = %q", f.Focused())
	}
}

func TestContactForm_EnterAdvancesFromSingleLineFields(t *testing.T) {
	f := NewContactFormView(testContact())
	f.Update(keyMsg("enter"))
	if f.Focused() != fieldEmail {
		t.Errorf("focus = %q", f.Focused())
	}
}

func TestContactForm_Validation(t *testing.T) {
	f := NewContactFormView(testContact())
	_, cmd := f.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Fatal("an empty form must not be sent")
	}
	if f.err == "" {
		t.Error("expected a validation message")
	}

	f.Update(keyMsg("Bo"))
	f.Update(keyMsg("tab"))
	f.Update(keyMsg("not-an-email"))
	f.Update(keyMsg("ctrl+s"))
	if !strings.Contains(f.err, "not valid") {
		t.Errorf("err = %q", f.err)
	}
}

func TestContactForm_EscWhenClean(t *testing.T) {
	f := NewContactFormView(testContact())
	_, cmd := f.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc on a clean form should leave")
	}
	if msg, ok := cmd().(NavigateMsg); !ok || msg.Path != "/contact" {
		t.Errorf("got %#v", msg)
	}
}

func TestMailtoLink(t *testing.T) {
	if got := recipient(testContact()); got != "me@example.com" {
		t.Errorf("recipient = %q", got)
	}
	got := mailtoLink("me@example.com", ContactMessage{Name: "Bo", Email: "bo@example.com", Body: "hi & bye"})
	want := "mailto:me@example.com?subject=Hello%20from%20Bo&body=hi%20%26%20bye"
	if !strings.HasPrefix(got, want) {
		t.Errorf("got %q", got)
	}
}

func TestValidateMessage(t *testing.T) {
	ok := ContactMessage{Name: "Bo", Email: "bo@example.com", Body: "hi"}
	if err := validateMessage(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, m := range []ContactMessage{
		{Email: "bo@example.com", Body: "hi"},
		{Name: "Bo", Email: "bo", Body: "hi"},
		{Name: "Bo", Email: "bo@example.com"},
	} {
		if err := validateMessage(m); err == nil {
			t.Errorf("expected error for %+v", m)
		}
	}
}
