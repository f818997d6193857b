package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/route"
)

// Landing describes a landing page: a backdrop scene with a heading and one
// button leading to the page's details.
type Landing struct {
	Heading      string
	Button       string
	Target       string
	LoadingTitle string
	LoadingHint  string
}

var landings = map[route.Page]Landing{
	route.BeyondEntry: {
		Heading:      "WELCOME TO BEYOND THE PORTFOLIO",
		Button:       "ENTER",
		Target:       "/beyond/overview",
		LoadingTitle: "Loading Interactive Experience...",
		LoadingHint:  "Entering the beyond portfolio experience",
	},
	route.Resume: {
		Heading:      "RESUME",
		Button:       "SEE RESUME",
		Target:       "/resume/details",
		LoadingTitle: "Loading Interactive Experience...",
		LoadingHint:  "Preparing the resume experience",
	},
	route.Contact: {
		Heading:      "LET'S TALK",
		Button:       "SAY HELLO",
		Target:       "/contact/form",
		LoadingTitle: "Loading Interactive Experience...",
		LoadingHint:  "Entering the contact form experience",
	},
	route.Skills: {
		Heading:      "SKILLS",
		Button:       "EXPLORE SKILLS",
		Target:       "/skills/details",
		LoadingTitle: "Loading Skills Experience...",
		LoadingHint:  "Entering the skills experience",
	},
}

// LandingView renders a Landing over its backdrop.
type LandingView struct {
	Page     route.Page
	Landing  Landing
	gen      uint64
	width    int
	height   int
	backdrop Backdrop
}

// Ensure LandingView implements View.
var _ View = (*LandingView)(nil)

// NewLandingView creates the landing for page instance gen.
func NewLandingView(page route.Page, gen uint64) *LandingView {
	return &LandingView{Page: page, Landing: landings[page], gen: gen, width: 80, height: 20}
}

// Init implements View.
func (l *LandingView) Init() tea.Cmd {
	return nil
}

// Ready reports whether the backdrop scene has arrived.
func (l *LandingView) Ready() bool {
	return !l.backdrop.Empty()
}

// Update implements View.
func (l *LandingView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width, l.height = msg.Width, msg.Height
	case SceneReadyMsg:
		if msg.Gen == l.gen {
			l.backdrop = msg.Backdrop
		}
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return l, navigateCmd(l.Landing.Target)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && l.hitButton(msg.X, msg.Y) {
			return l, navigateCmd(l.Landing.Target)
		}
	}
	return l, nil
}

func (l *LandingView) content() string {
	button := Styles.BoxCompact.
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 3).
		Render(Styles.Title.Render(l.Landing.Button))
	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render(l.Landing.Heading),
		"",
		button,
		Styles.Hint.Render("enter"),
	)
}

// hitButton reports whether the cell x, y lies on the button.
func (l *LandingView) hitButton(x, y int) bool {
	c := l.content()
	w, h := lipgloss.Width(c), lipgloss.Height(c)
	left, top := max((l.width-w)/2, 0), max((l.height-h)/2, 0)
	// heading, blank line, then a three-row button
	return y >= top+2 && y < top+5 && x >= left && x < left+w
}

// View implements View.
func (l *LandingView) View() string {
	return composeOver(l.backdrop.Lines, l.content(), l.width, l.height)
}
