// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. ANSI escape codes
// are ignored.
func Width(s string) int {
	if strings.ContainsRune(s, '\x1b') {
		return lipgloss.Width(s)
	}
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to exactly width columns, truncating when longer.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// Center pads s on both sides to width columns. Odd leftovers go to the right.
func Center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + runewidth.FillRight(s, width-left)
}

// Wrap breaks s into lines of at most width columns on word boundaries. Words
// longer than width are truncated.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word, ww = Truncate(word, width), width
		}
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
