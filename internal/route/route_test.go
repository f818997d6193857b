package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"about", "/about"},
		{"/about/", "/about"},
		{"/about/team", "/about"},
		{"/beyond", "/beyond"},
		{"/beyond/books", "/beyond/books"},
		{"/beyond/books/", "/beyond/books"},
		{"/beyond/nope", "/beyond/overview"},
		{"/beyond/books/extra", "/beyond/overview"},
		{"/resume/x", "/resume/details"},
		{"/contact/x/y", "/contact/form"},
		{"/skills/go", "/skills/details"},
		{"/missing", "/"},
		{"/beyond/music?track=1", "/beyond/music"},
		{"/about/../skills", "/skills"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in).Path)
		})
	}
}

func TestTable_SelfResolving(t *testing.T) {
	for _, e := range Table() {
		assert.Equal(t, e, Resolve(e.Path), e.Path)
		assert.True(t, Known(e.Path))
		assert.Equal(t, e.Path, e.Page.Path())
		assert.Equal(t, e.Title, e.Page.String())
	}
	assert.False(t, Known("/beyond/nope"))
	assert.Equal(t, "unknown", Page(999).String())
	assert.Equal(t, "/", Page(999).Path())
}

func TestNavbar(t *testing.T) {
	var labels []string
	for _, l := range Navbar {
		labels = append(labels, l.Label)
		assert.True(t, Known(l.Path), l.Path)
	}
	assert.Equal(t, []string{"Home", "About", "Special", "Resume", "Contact", "Skills"}, labels)
}

func TestSection(t *testing.T) {
	l, ok := Section("/beyond/books")
	require.True(t, ok)
	assert.Equal(t, "Special", l.Label)

	l, ok = Section("/")
	require.True(t, ok)
	assert.Equal(t, "Home", l.Label)

	l, ok = Section("/nowhere")
	require.True(t, ok)
	assert.Equal(t, "Home", l.Label, "unknown paths redirect home")

	l, _ = Section("/skills/details")
	assert.Equal(t, "Skills", l.Label)
}

func TestRouter_NavigateAndBack(t *testing.T) {
	r := NewRouter("/")
	assert.Equal(t, Home, r.Current().Page)
	assert.False(t, r.CanGoBack())

	_, ok := r.Back()
	assert.False(t, ok)

	e, ok := r.Navigate("/beyond")
	require.True(t, ok)
	assert.Equal(t, BeyondEntry, e.Page)

	_, ok = r.Navigate("/beyond/")
	assert.False(t, ok, "same location does not grow the history")
	assert.Equal(t, 1, r.Depth())

	r.Navigate("/beyond/whatever")
	assert.Equal(t, BeyondDeck, r.Current().Page)
	r.Navigate("/beyond/books")

	e, ok = r.Back()
	require.True(t, ok)
	assert.Equal(t, BeyondDeck, e.Page)
	e, _ = r.Back()
	assert.Equal(t, BeyondEntry, e.Page)
	e, _ = r.Back()
	assert.Equal(t, Home, e.Page)
	assert.False(t, r.CanGoBack())
}

func TestRouter_HistoryIsBounded(t *testing.T) {
	r := NewRouter("/")
	for i := 0; i < DefaultHistory*2; i++ {
		if i%2 == 0 {
			r.Navigate("/about")
		} else {
			r.Navigate("/")
		}
	}
	assert.Equal(t, DefaultHistory, r.Depth())
}
