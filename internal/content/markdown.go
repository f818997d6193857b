package content

import (
	"fmt"
	"strings"
)

// ResumeMarkdown renders the resume entries as a markdown document.
func (c *Content) ResumeMarkdown() string {
	var b strings.Builder
	b.WriteString("# Resume\n\n## Experience\n")
	for _, e := range c.Resume {
		fmt.Fprintf(&b, "\n### %s\n\n*%s*", e.Title, e.Place)
		if e.Period != "" {
			fmt.Fprintf(&b, " · %s", e.Period)
		}
		b.WriteString("\n\n")
		if e.Summary != "" {
			b.WriteString(e.Summary + "\n")
		}
	}
	return b.String()
}

// SkillsMarkdown renders the skill groups as a markdown document.
func (c *Content) SkillsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Skills\n")
	for _, g := range c.Skills {
		fmt.Fprintf(&b, "\n## %s\n\n", g.Name)
		for _, s := range g.Skills {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}

// StoryMarkdown renders lines as a short story, one paragraph per line.
func StoryMarkdown(title string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, l := range lines {
		fmt.Fprintf(&b, "\n%s\n", l)
	}
	return b.String()
}
