package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/route"
)

const (
	headerHeight = 2 // navbar and rule
	footerHeight = 1
	navGap       = 3
)

// navSpan is the column range of a navbar link.
type navSpan struct {
	link       route.Link
	start, end int
}

// navbarLayout returns where each link is drawn, after the brand.
func navbarLayout(brand string) []navSpan {
	x := lipgloss.Width(brand) + navGap
	spans := make([]navSpan, 0, len(route.Navbar))
	for _, l := range route.Navbar {
		w := lipgloss.Width(l.Label)
		spans = append(spans, navSpan{link: l, start: x, end: x + w})
		x += w + navGap
	}
	return spans
}

// navbarHit returns the link under column x.
func navbarHit(brand string, x int) (route.Link, bool) {
	for _, s := range navbarLayout(brand) {
		if x >= s.start && x < s.end {
			return s.link, true
		}
	}
	return route.Link{}, false
}

// renderNavbar draws the brand and the links, marking the section of current.
func renderNavbar(brand, current string, width int) string {
	active, _ := route.Section(current)
	var b strings.Builder
	b.WriteString(Styles.Title.Render(brand))
	for _, s := range navbarLayout(brand) {
		b.WriteString(strings.Repeat(" ", navGap))
		if s.link.Path == active.Path {
			b.WriteString(Styles.Selected.Render(s.link.Label))
		} else {
			b.WriteString(Styles.Muted.Render(s.link.Label))
		}
	}
	rule := Styles.CardDim.Render(strings.Repeat("─", max(width, 0)))
	return b.String() + "\n" + rule
}

// renderFooter draws the socials, the status and the clock on one line.
func renderFooter(socials []content.Social, status string, isErr bool, now time.Time, width int) string {
	labels := make([]string, len(socials))
	for i, s := range socials {
		labels[i] = s.Label
	}
	left := Styles.Muted.Render(strings.Join(labels, " · "))
	clock := Styles.Hint.Render(now.Format("15:04:05"))
	mid := ""
	if status != "" {
		if isErr {
			mid = Styles.TitleWarning.Render(status)
		} else {
			mid = Styles.Section.Render(status)
		}
	}
	used := lipgloss.Width(left) + lipgloss.Width(mid) + lipgloss.Width(clock)
	if used+2 > width {
		mid = ""
		used = lipgloss.Width(left) + lipgloss.Width(clock)
	}
	gap := max(width-used, 2)
	lg := gap / 2
	if mid == "" {
		lg = gap
	}
	return left + strings.Repeat(" ", lg) + mid + strings.Repeat(" ", gap-lg) + clock
}
