package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// composeOver centres fg on a width x height area filled with bg. Background
// lines are plain ASCII; fg may carry ANSI styling.
func composeOver(bg []string, fg string, width, height int) string {
	if len(bg) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, fg)
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)
	top := max((height-len(fgLines))/2, 0)
	left := max((width-fgWidth)/2, 0)

	var b strings.Builder
	for y := 0; y < height; y++ {
		row := bgRow(bg, y, width)
		if i := y - top; i >= 0 && i < len(fgLines) {
			line := fgLines[i]
			pad := max(fgWidth-lipgloss.Width(line), 0)
			right := min(left+fgWidth, width)
			b.WriteString(Styles.CardDim.Render(row[:left]))
			b.WriteString(line + strings.Repeat(" ", pad))
			b.WriteString(Styles.CardDim.Render(row[right:]))
		} else {
			b.WriteString(Styles.CardDim.Render(row))
		}
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// bgRow returns row y of bg fitted to width columns.
func bgRow(bg []string, y, width int) string {
	row := bg[y%len(bg)]
	if len(row) >= width {
		return row[:width]
	}
	return row + strings.Repeat(" ", width-len(row))
}
