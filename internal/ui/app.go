package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/route"
	"folio/internal/trace"
)

// Options are the dependencies of the application model.
type Options struct {
	Config  *config.Config
	Content *content.Content
	Logger  *zap.Logger
	Tracer  *trace.Tracer
	Now     func() time.Time // clock source; time.Now when nil
}

// AppModel is the root model. It owns the router and hosts one page View at
// a time, with overlays (loading screens, confirmations) stacked on top.
type AppModel struct {
	Router     *route.Router
	Content    *content.Content
	Config     *config.Config
	Page       View
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	// Status is shown in the footer.
	Status        string
	StatusIsError bool

	log    *zap.Logger
	tracer *trace.Tracer
	now    func() time.Time
	clock  time.Time

	width  int
	height int

	// gen identifies the mounted page instance; stale ticks carry an old one.
	gen         uint64
	introPlayed bool
	replayIntro bool
	pending     tea.Cmd
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewApp creates the application model positioned at the configured start
// route.
func NewApp(opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	a := &AppModel{
		Router:     route.NewRouter(cfg.Start),
		Content:    c,
		Config:     cfg,
		KeyHandler: NewKeyHandler(newRegistry()),
		log:        log,
		tracer:     opts.Tracer,
		now:        now,
		clock:      now(),
		width:      80,
		height:     24,
	}
	a.pending = a.mount(a.Router.Current())
	return a
}

// newRegistry binds the global keys.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("backspace", func() tea.Msg { return BackMsg{} }, "Back")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for _, l := range route.Navbar {
		reg.BindWithDesc("SPC "+l.Key, navigateCmd(l.Path), l.Label)
	}

	beyond := []route.Page{route.BeyondEntry, route.BeyondDeck, route.Books, route.Music, route.Movies, route.Sports, route.Random}
	for _, b := range []struct{ key, path, desc string }{
		{"o", "/beyond/overview", "Overview"},
		{"b", "/beyond/books", "Books"},
		{"m", "/beyond/music", "Music"},
		{"v", "/beyond/movies", "Movies"},
		{"s", "/beyond/sports", "Sports"},
		{"r", "/beyond/random", "Random facts"},
	} {
		reg.BindWithDescForPages("SPC p "+b.key, navigateCmd(b.path), b.desc, beyond)
	}
	reg.Group("SPC p", "Beyond pages")
	reg.BindWithDescForPages("SPC i", func() tea.Msg { return ReplayIntroMsg{} }, "Replay intro", []route.Page{route.Home})
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmd := a.pending
	a.pending = nil
	return tea.Batch(cmd, clockTickCmd(a.now()), tea.SetWindowTitle(a.Content.Profile.Name))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case NavigateMsg:
		return a, a.navigate(msg.Path)
	case BackMsg:
		return a.handleBack()
	case ReplayIntroMsg:
		return a.handleReplayIntro()
	case IntroDoneMsg:
		return a.handleIntroDone(msg)
	case SceneReadyMsg:
		return a.handleSceneReady(msg)
	case ContentReloadedMsg:
		return a.handleContentReloaded(msg)
	case ShowSendConfirmMsg:
		modal := NewSendMessageConfirmModal(msg.Message)
		a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return a, modal.Init()
	case ShowDiscardConfirmMsg:
		modal := NewDiscardMessageConfirmModal()
		a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return a, modal.Init()
	case ContactSubmittedMsg:
		return a.handleContactSubmitted(msg)
	case ContactDiscardedMsg:
		return a.handleContactDiscarded()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case clockTickMsg:
		a.clock = a.now()
		return a, clockTickCmd(a.clock)
	case spinner.TickMsg:
		return a, a.Overlays.UpdateAll(msg)
	}

	return a, a.updatePage(msg)
}

func (a *appModelAdapter) updatePage(msg tea.Msg) tea.Cmd {
	if a.Page == nil {
		return nil
	}
	v, cmd := a.Page.Update(msg)
	a.Page = v
	return cmd
}

// bodyHeight is the height available to pages.
func (a *AppModel) bodyHeight() int {
	return max(a.height-headerHeight-footerHeight, 1)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	bodyH := a.bodyHeight()
	var body string
	if top, ok := a.Overlays.Peek(); ok {
		body = lipgloss.Place(a.width, bodyH, lipgloss.Center, lipgloss.Center, top.View.View())
	} else if a.Page != nil {
		body = a.Page.View()
	}

	lines := strings.Split(body, "\n")
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		help := RenderKeybindHelp(a.KeyHandler, a.Router.Current().Page)
		if help != "" {
			keep := max(bodyH-lipgloss.Height(help), 0)
			lines = append(fitLines(lines, keep), strings.Split(help, "\n")...)
		}
	}
	lines = fitLines(lines, bodyH)

	header := renderNavbar(a.Content.Profile.Name, a.Router.Current().Path, a.width)
	footer := renderFooter(a.Content.Profile.Socials, a.Status, a.StatusIsError, a.clock, a.width)
	return header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

// fitLines pads or cuts lines to exactly n.
func fitLines(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// record emits a trace event.
func (a *AppModel) record(ev trace.Event) {
	a.tracer.Record(context.Background(), ev)
}
