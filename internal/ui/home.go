package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/intro"
	"folio/internal/typewriter"
)

// IntroDoneMsg is emitted once when the charge-up intro finishes or is skipped.
type IntroDoneMsg struct {
	Skipped bool
}

const robot = `   ___
  [o_o]
 /|___|\
  _| |_`

// HomeView plays the charge-up intro, then types out the greetings.
type HomeView struct {
	gen     uint64
	width   int
	height  int
	machine intro.Machine
	state   intro.State
	last    time.Time
	bar     progress.Model

	writer     *typewriter.Typewriter
	typing     typewriter.State
	highlights []string
	name       string
	tagline    string
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home page for instance gen. With playIntro false the
// greeting starts right away.
func NewHomeView(gen uint64, c *content.Content, easing intro.Easing, playIntro bool) *HomeView {
	bar := progress.New(progress.WithSolidFill(ColorAccent), progress.WithoutPercentage())
	h := &HomeView{
		gen:        gen,
		width:      80,
		height:     20,
		machine:    intro.NewMachine(easing),
		bar:        bar,
		writer:     typewriter.New(c.Greetings, typewriter.DefaultTiming),
		highlights: c.Highlights,
		name:       c.Profile.Name,
		tagline:    c.Profile.Tagline,
	}
	h.state = intro.NewState(h.maxScale())
	if !playIntro {
		h.state = intro.Skip(h.state)
	}
	return h
}

// maxScale is the ball size that covers the stage, in half-cells.
func (h *HomeView) maxScale() float64 {
	return math.Hypot(float64(h.width), float64(h.height*2))
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	if h.state.Phase == intro.Done {
		return h.startTyping()
	}
	return introFrameCmd(h.gen, intro.FrameStep)
}

func (h *HomeView) startTyping() tea.Cmd {
	s, d := h.writer.Start()
	h.typing = s
	return typeTickCmd(h.gen, d)
}

// Intro returns the intro state.
func (h *HomeView) Intro() intro.State { return h.state }

// Greeting returns the visible part of the current greeting.
func (h *HomeView) Greeting() string { return h.writer.Text(h.typing) }

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.state.MaxScale = math.Max(h.maxScale(), h.state.MaxScale)
		h.bar.Width = min(40, max(msg.Width-20, 10))
	case introFrameMsg:
		if msg.gen != h.gen || h.state.Phase == intro.Done {
			return h, nil
		}
		dt := intro.FrameStep
		if !h.last.IsZero() {
			dt = msg.at.Sub(h.last)
		}
		h.last = msg.at
		h.state = h.machine.Step(h.state, dt)
		if h.state.Phase == intro.Done {
			return h, tea.Batch(h.startTyping(), introDoneCmd(false))
		}
		return h, introFrameCmd(h.gen, intro.FrameStep)
	case typeTickMsg:
		if msg.gen != h.gen || h.state.Phase != intro.Done {
			return h, nil
		}
		s, d := h.writer.Step(h.typing)
		h.typing = s
		return h, typeTickCmd(h.gen, d)
	case tea.KeyMsg:
		if h.state.Phase != intro.Done && (msg.String() == "enter" || msg.String() == "esc") {
			h.state = intro.Skip(h.state)
			return h, tea.Batch(h.startTyping(), introDoneCmd(true))
		}
	}
	return h, nil
}

func introDoneCmd(skipped bool) tea.Cmd {
	return func() tea.Msg { return IntroDoneMsg{Skipped: skipped} }
}

// View implements View.
func (h *HomeView) View() string {
	switch h.state.Phase {
	case intro.Counting:
		return h.viewCounting()
	case intro.Dropping:
		return h.viewDropping()
	case intro.Expanding:
		return h.viewExpanding()
	}
	return h.viewGreeting()
}

func (h *HomeView) viewCounting() string {
	count := Styles.Title.Render(fmt.Sprintf("%3d", h.state.Count))
	body := lipgloss.JoinVertical(lipgloss.Center, count, "", h.bar.ViewAs(h.state.Progress()))
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, body)
}

func (h *HomeView) viewDropping() string {
	lines := make([]string, h.height)
	row := min(int(h.state.BallY/100*float64(h.height)), h.height-1)
	mid := h.height / 2
	for y := range lines {
		switch y {
		case row:
			lines[y] = centerLine(Styles.Title.Render("●"), h.width)
		case mid - 2:
			if h.state.ChargeText {
				lines[y] = centerLine(Styles.Muted.Render("charged."), h.width)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (h *HomeView) viewExpanding() string {
	// Cells are about twice as tall as wide, so rows count double.
	r := h.state.Scale / 2
	cx, cy := float64(h.width)/2, float64(h.height)*0.88
	var b strings.Builder
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			dx, dy := float64(x)-cx, (float64(y)-cy)*2
			if dx*dx+dy*dy <= r*r {
				b.WriteRune('█')
			} else {
				b.WriteByte(' ')
			}
		}
		if y < h.height-1 {
			b.WriteByte('\n')
		}
	}
	return Styles.Title.UnsetBold().Render(b.String())
}

func (h *HomeView) viewGreeting() string {
	var line strings.Builder
	for _, seg := range typewriter.Segments(h.Greeting(), h.highlights) {
		if seg.Highlight {
			line.WriteString(Styles.Highlight.Render(seg.Text))
		} else {
			line.WriteString(Styles.Normal.Render(seg.Text))
		}
	}
	line.WriteString(Styles.Selected.Render("▌"))

	left := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Muted.Render(h.tagline),
		"",
		line.String(),
	)
	left = lipgloss.NewStyle().Width(max(h.writer.Width()+2, 20)).Render(left)
	right := Styles.Section.Render(robot)
	body := lipgloss.JoinHorizontal(lipgloss.Center, left, "    ", right)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, body)
}

func centerLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
