package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 4, Width("世界"))
	styled := lipgloss.NewStyle().Bold(true).Render("abc")
	assert.Equal(t, 3, Width(styled))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"世界世界", 5, "世界…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, Width(got), max(tt.max, 0))
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "世 ", PadRight("世", 3))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, "ab…", Center("abcd", 3))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"the thrill", "side of me."}, Wrap("the thrill side of me.", 11))
	assert.Equal(t, []string{"abcd…", "x"}, Wrap("abcdefgh x", 5))
	assert.Nil(t, Wrap("", 10))
	assert.Nil(t, Wrap("words", 0))
}
