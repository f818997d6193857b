package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/route"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by page.
// When keyHandler is in leader mode with a buffer (e.g. "SPC p"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, page route.Page) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := keyHandler.Sequence()
	bindings := hintBindings(keyHandler.Registry.LeaderHints(currentSeq, page))
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1)

	prefix := Leader
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
