package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"folio/internal/content"
	"folio/internal/intro"
	"folio/internal/route"
	"folio/internal/trace"
)

// handleResize records the terminal size and passes the body size to the page.
func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	return a, a.updatePage(a.bodySize())
}

func (a *AppModel) bodySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: a.bodyHeight()}
}

// handleKey routes a key to the top overlay, the keybind system or the page.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		if !top.PassThrough {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
	}
	if c, ok := a.Page.(InputCapturer); ok && c.CapturesInput() {
		return a, a.updatePage(msg)
	}
	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}
	return a, a.updatePage(msg)
}

// handleMouse handles navbar clicks and forwards the rest to the page in page
// coordinates.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y < headerHeight {
		if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if l, ok := navbarHit(a.Content.Profile.Name, msg.X); ok {
				return a, navigateCmd(l.Path)
			}
		}
		return a, nil
	}
	if top, ok := a.Overlays.Peek(); ok && !top.PassThrough {
		return a, nil
	}
	msg.Y -= headerHeight
	return a, a.updatePage(msg)
}

// navigate moves the router to path and mounts the page it resolves to.
func (a *AppModel) navigate(path string) tea.Cmd {
	from := a.Router.Current()
	to, changed := a.Router.Navigate(path)
	if !changed {
		return nil
	}
	a.routeChanged(from, to)
	return a.mount(to)
}

func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	from := a.Router.Current()
	to, ok := a.Router.Back()
	if !ok {
		return a, nil
	}
	a.routeChanged(from, to)
	return a, a.mount(to)
}

func (a *AppModel) routeChanged(from, to route.Entry) {
	a.log.Info("navigate", zap.String("from", from.Path), zap.String("to", to.Path))
	a.record(trace.Event{
		Type:       trace.EventRoute,
		Name:       to.Path,
		Attributes: map[string]string{"from": from.Path, "to": to.Path},
	})
}

// mount replaces the current page with a fresh instance for entry.
func (a *AppModel) mount(entry route.Entry) tea.Cmd {
	if u, ok := a.Page.(Unmounter); ok {
		u.Unmount()
	}
	a.Overlays.Clear()
	a.gen++

	page, err := a.buildPage(entry.Page)
	if err != nil {
		a.log.Error("build page", zap.String("route", entry.Path), zap.Error(err))
		a.Status = fmt.Sprintf("%s: %v", entry.Title, err)
		a.StatusIsError = true
		page = NewMarkdownView("# " + entry.Title + "\n\nThis page could not be built.")
	}
	a.Page = page
	a.Page, _ = a.Page.Update(a.bodySize())
	cmds := []tea.Cmd{a.Page.Init()}

	if overlay, ok := a.loadingOverlay(entry.Page); ok {
		a.Overlays.Push(overlay)
		cmds = append(cmds,
			overlay.View.Init(),
			loadSceneCmd(entry.Page, a.gen, a.width, a.bodyHeight(), a.Config.SceneDelay),
		)
	}
	return tea.Batch(cmds...)
}

// loadingOverlay returns the loading screen of pages drawn over a backdrop.
// Landing pages block input until the scene is ready; the deck stays usable.
func (a *AppModel) loadingOverlay(page route.Page) (Overlay, bool) {
	if l, ok := landings[page]; ok {
		return Overlay{View: NewLoadingOverlay(page, a.gen, l.LoadingTitle, l.LoadingHint)}, true
	}
	if page == route.BeyondDeck {
		v := NewLoadingOverlay(page, a.gen, "Loading Interactive Experience...", "Shuffling the deck")
		return Overlay{View: v, PassThrough: true}, true
	}
	return Overlay{}, false
}

// buildPage creates the view for page from the current content.
func (a *AppModel) buildPage(page route.Page) (View, error) {
	c := a.Content
	switch page {
	case route.Home:
		play := a.replayIntro || (!a.Config.NoIntro && !a.introPlayed)
		a.replayIntro = false
		return NewHomeView(a.gen, c, intro.EasingByName(a.Config.Easing), play), nil
	case route.About:
		return NewMarkdownView(c.About), nil
	case route.BeyondEntry, route.Resume, route.Contact, route.Skills:
		return NewLandingView(page, a.gen), nil
	case route.BeyondDeck:
		return NewDeckView(a.gen, c.DeckCards(), DeckOptions{
			Transition: a.Config.Transition,
			Tilt:       a.Config.Tilt,
			Tracer:     a.tracer,
			Logger:     a.log,
		})
	case route.Books:
		return NewBooksView(c.Books), nil
	case route.Music:
		return NewMusicView(c.Playlists), nil
	case route.Movies:
		return NewMoviesView(c.Movies), nil
	case route.Sports:
		return NewMarkdownView(content.StoryMarkdown("Sports & Adrenaline", c.Sports)), nil
	case route.Random:
		return NewMarkdownView(content.StoryMarkdown("Random Facts", c.Facts)), nil
	case route.ResumeDetails:
		return NewMarkdownView(c.ResumeMarkdown()), nil
	case route.ContactForm:
		return NewContactFormView(c.Contact), nil
	case route.SkillsDetails:
		return NewMarkdownView(c.SkillsMarkdown()), nil
	}
	return nil, fmt.Errorf("no view for page %s", page)
}

// handleReplayIntro goes home and plays the intro again.
func (a *appModelAdapter) handleReplayIntro() (tea.Model, tea.Cmd) {
	a.replayIntro = true
	if a.Router.Current().Page == route.Home {
		return a, a.mount(a.Router.Current())
	}
	return a, a.navigate("/")
}

func (a *appModelAdapter) handleIntroDone(msg IntroDoneMsg) (tea.Model, tea.Cmd) {
	a.introPlayed = true
	a.record(trace.Event{
		Type:       trace.EventIntroDone,
		Attributes: map[string]string{"skipped": strconv.FormatBool(msg.Skipped)},
	})
	return a, nil
}

// handleSceneReady lifts the loading overlay of the current page instance.
// Scenes requested by pages that are no longer mounted are dropped.
func (a *appModelAdapter) handleSceneReady(msg SceneReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != a.gen {
		return a, nil
	}
	a.Overlays.RemoveFunc(func(v View) bool {
		l, ok := v.(*LoadingOverlay)
		return ok && l.Gen == msg.Gen
	})
	a.record(trace.Event{Type: trace.EventSceneReady, Name: msg.Page.Path()})
	return a, a.updatePage(msg)
}

// handleContentReloaded swaps in new content and rebuilds the page, unless the
// user is typing into it. A failed reload keeps the previous content.
func (a *appModelAdapter) handleContentReloaded(msg ContentReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Status = "content reload failed"
		a.StatusIsError = true
		a.log.Warn("content reload rejected", zap.Error(msg.Err))
		a.record(trace.Event{Type: trace.EventReload, Attributes: map[string]string{"outcome": "rejected"}})
		return a, nil
	}
	a.Content = msg.Content
	a.Status = "content reloaded"
	a.StatusIsError = false
	a.record(trace.Event{Type: trace.EventReload, Attributes: map[string]string{"outcome": "applied"}})
	if c, ok := a.Page.(InputCapturer); ok && c.CapturesInput() {
		return a, nil
	}
	return a, a.mount(a.Router.Current())
}

func (a *appModelAdapter) handleContactSubmitted(msg ContactSubmittedMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if form, ok := a.Page.(*ContactFormView); ok {
		form.Drafted(msg.Message)
	}
	a.log.Info("contact message drafted", zap.String("email", msg.Message.Email), zap.Int("length", len(msg.Message.Body)))
	a.Status = "message drafted"
	a.StatusIsError = false
	return a, nil
}

func (a *appModelAdapter) handleContactDiscarded() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if form, ok := a.Page.(*ContactFormView); ok {
		form.Reset()
	}
	return a, a.navigate("/contact")
}
