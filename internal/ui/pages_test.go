package ui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
)

func TestMarkdownView_RendersAndRewraps(t *testing.T) {
	m := NewMarkdownView("# Title\n\nparagraph")
	if !strings.Contains(m.Rendered(), "paragraph") {
		t.Errorf("rendered:\n%s", m.Rendered())
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	if m.width != 40 {
		t.Errorf("width = %d", m.width)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 5 {
		t.Errorf("viewport has %d lines, want 5", lines)
	}
}

func TestListViews(t *testing.T) {
	c := content.Default()

	books := NewBooksView(c.Books)
	if books.Len() != len(c.Books) {
		t.Errorf("books = %d", books.Len())
	}
	books.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(books.View(), "Atomic Habits") {
		t.Error("books view should list the first book")
	}

	music := NewMusicView(c.Playlists)
	music.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(music.View(), "Morning Vibes") {
		t.Error("music view should list the playlists")
	}

	movies := NewMoviesView(nil)
	if !strings.Contains(movies.View(), "Nothing here yet") {
		t.Error("movies view should show the empty state")
	}
	movies = NewMoviesView([]content.Movie{{Title: "Interstellar", Year: 2014}})
	movies.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(movies.View(), "Interstellar (2014)") {
		t.Error("movies view should show the year")
	}
}

func TestNavbar(t *testing.T) {
	bar := renderNavbar("folio", "/beyond/books", 40)
	for _, label := range []string{"folio", "Home", "Special", "Skills"} {
		if !strings.Contains(bar, label) {
			t.Errorf("navbar should contain %q", label)
		}
	}
	if strings.Count(bar, "\n") != headerHeight-1 {
		t.Errorf("navbar should be %d lines", headerHeight)
	}

	spans := navbarLayout("folio")
	if spans[0].start != len("folio")+navGap {
		t.Errorf("first link starts at %d", spans[0].start)
	}
	if l, ok := navbarHit("folio", spans[2].start+1); !ok || l.Path != "/beyond" {
		t.Errorf("hit = %+v %v", l, ok)
	}
	if _, ok := navbarHit("folio", 0); ok {
		t.Error("the brand is not a link")
	}
}

func TestFooter(t *testing.T) {
	socials := []content.Social{{Label: "github"}, {Label: "email"}}
	now := time.Date(2025, 1, 2, 9, 8, 7, 0, time.Local)

	f := renderFooter(socials, "saved", false, now, 60)
	for _, s := range []string{"github · email", "saved", "09:08:07"} {
		if !strings.Contains(f, s) {
			t.Errorf("footer should contain %q: %q", s, f)
		}
	}

	narrow := renderFooter(socials, "a very long status that cannot fit", true, now, 30)
	if strings.Contains(narrow, "status") {
		t.Error("status is dropped when it does not fit")
	}
	if !strings.Contains(narrow, "09:08:07") {
		t.Error("the clock always shows")
	}
}

func TestClockTickCmd_WaitsForNextSecond(t *testing.T) {
	start := time.Now()
	cmd := clockTickCmd(time.Now().Truncate(time.Second).Add(time.Second - 20*time.Millisecond))
	if _, ok := cmd().(clockTickMsg); !ok {
		t.Fatal("expected clockTickMsg")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("tick should fire at the next whole second of the given time")
	}
}

func TestConfirmModal(t *testing.T) {
	m := NewSendMessageConfirmModal(ContactMessage{Name: "Bo", Email: "bo@example.com", Body: "hey"})
	if !strings.Contains(m.View(), "Bo <bo@example.com>") {
		t.Errorf("view:\n%s", m.View())
	}
	_, cmd := m.Update(keyMsg("n"))
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("n should dismiss")
	}
	_, cmd = m.Update(keyMsg("y"))
	if msg, ok := cmd().(ContactSubmittedMsg); !ok || msg.Message.Name != "Bo" {
		t.Errorf("y should submit, got %#v", msg)
	}

	d := NewDiscardMessageConfirmModal()
	_, cmd = d.Update(keyMsg("enter"))
	if _, ok := cmd().(ContactDiscardedMsg); !ok {
		t.Error("enter should discard")
	}
}

func TestOverlayStack_RemoveFunc(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{View: NewLoadingOverlay(0, 1, "a", "")})
	s.Push(Overlay{View: NewDiscardMessageConfirmModal(), Dismiss: "esc"})
	s.Push(Overlay{View: NewLoadingOverlay(0, 2, "b", "")})

	s.RemoveFunc(func(v View) bool {
		l, ok := v.(*LoadingOverlay)
		return ok && l.Gen == 1
	})
	if s.Len() != 2 {
		t.Fatalf("len = %d", s.Len())
	}
	top, _ := s.Peek()
	if l, ok := top.View.(*LoadingOverlay); !ok || l.Gen != 2 {
		t.Errorf("top = %T", top.View)
	}
	if !s.Stack[0].IsDismissKey("esc") || s.Stack[1].IsDismissKey("esc") {
		t.Error("only overlays with a dismiss key are dismissed by it")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should empty the stack")
	}
}

func TestFocusRing(t *testing.T) {
	var changes []int
	r := NewFocusRing(func(to int) { changes = append(changes, to) }, 1, 2, 3)
	if r.Current() != 1 || len(changes) != 1 {
		t.Fatalf("initial: current=%d changes=%v", r.Current(), changes)
	}
	if got := r.Prev(); got != 3 {
		t.Errorf("Prev from first = %d, want 3", got)
	}
	if got := r.Next(); got != 1 {
		t.Errorf("Next from last = %d, want 1", got)
	}
	if r.Focus(9) {
		t.Error("Focus accepted a field outside the ring")
	}
	if !r.Focus(2) || !r.Is(2) {
		t.Errorf("Focus(2): current=%d", r.Current())
	}
	r.Focus(2)
	if want := []int{1, 3, 1, 2}; !slices.Equal(changes, want) {
		t.Errorf("changes = %v, want %v", changes, want)
	}

	empty := NewFocusRing[string](nil)
	if empty.Next() != "" || empty.Is("") {
		t.Error("empty ring should have no focus")
	}
}
