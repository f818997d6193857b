package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
)

// listItem is a title with an optional description.
type listItem struct {
	title, desc string
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.desc }
func (i listItem) FilterValue() string { return i.title }

// ListView is a titled list page with an empty state.
type ListView struct {
	list  list.Model
	empty string
}

// Ensure ListView implements View.
var _ View = (*ListView)(nil)

func newListView(title string, items []list.Item, empty string) *ListView {
	l := newList(title, items, true)
	l.SetSize(80, 20)
	return &ListView{list: l, empty: empty}
}

// NewBooksView lists the books with their notes.
func NewBooksView(books []content.Book) *ListView {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = listItem{title: fmt.Sprintf("%s · %s", b.Title, b.Author), desc: b.Note}
	}
	return newListView("Books", items, "No books yet.")
}

// NewMusicView lists the playlists.
func NewMusicView(playlists []content.Playlist) *ListView {
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		title := p.Title
		if p.Emoji != "" {
			title = p.Emoji + " " + p.Title
		}
		items[i] = listItem{title: title, desc: p.Mood}
	}
	return newListView("Music", items, "No playlists yet.")
}

// NewMoviesView lists the movies.
func NewMoviesView(movies []content.Movie) *ListView {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		title := m.Title
		if m.Year > 0 {
			title = fmt.Sprintf("%s (%d)", m.Title, m.Year)
		}
		items[i] = listItem{title: title, desc: m.Note}
	}
	return newListView("Movies", items, "Nothing here yet. The reel is still rolling.")
}

// Len returns the number of items.
func (v *ListView) Len() int { return len(v.list.Items()) }

// Init implements View.
func (v *ListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.list.SetSize(msg.Width, msg.Height)
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ListView) View() string {
	if v.Len() == 0 {
		title := v.list.Styles.Title.Render(v.list.Title)
		return lipgloss.JoinVertical(lipgloss.Left, title, "", Styles.Empty.Padding(0, 1).Render(v.empty))
	}
	return v.list.View()
}
