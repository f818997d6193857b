package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "#F8F8F8" // Off-white - for titles, highlights
	ColorHighlight = "#E11D48" // Red - for the active page, selected items
	ColorDanger    = "196"     // Red - for warnings, errors
	ColorMuted     = "#7B7B7B" // Gray - for dimmed text, hints
	ColorText      = "252"     // Light gray - for normal text
	ColorDim       = "#3A3A3A" // Dark gray - for blurred cards, backdrops
	ColorWarning   = "208"     // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Box        lipgloss.Style // Standard box with rounded border (accent border)
	BoxDanger  lipgloss.Style // Warning/error box (danger border)
	BoxCompact lipgloss.Style // Compact box with less padding (for lists)

	// Text styles
	Selected  lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted     lipgloss.Style // Dimmed text (muted color)
	Normal    lipgloss.Style // Normal text (text color)
	Hint      lipgloss.Style // Help/hint text (muted color)
	Section   lipgloss.Style // Section headers (highlight color)
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Label     lipgloss.Style // Modal label/content (default)
	Details   lipgloss.Style // Warning details (warning color)
	Highlight lipgloss.Style // Greeting highlights (bold highlight color)

	// Deck styles
	CardFront  lipgloss.Style // Front card border and text
	CardQueued lipgloss.Style // Queued cards
	CardDim    lipgloss.Style // Blurred or fading cards
	CardGlint  lipgloss.Style // Shimmer column on the front card
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Highlight: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	CardFront: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	CardQueued: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	CardDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	CardGlint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}

// NewCompactListDelegate returns a delegate with shared styles. Descriptions
// are shown on a second line when showDesc is set.
func NewCompactListDelegate(showDesc bool) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = showDesc
	if !showDesc {
		d.SetSpacing(0)
	}
	d.Styles.SelectedTitle = Styles.Selected.BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Bold(false).Foreground(lipgloss.Color(ColorAccent))
	d.Styles.NormalTitle = Styles.Normal.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}

// newList builds a list.Model the way every page uses it: no filter, no
// status bar, no built-in help or quit keys.
func newList(title string, items []list.Item, showDesc bool) list.Model {
	l := list.New(items, NewCompactListDelegate(showDesc), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title.Padding(0, 1)
	return l
}
