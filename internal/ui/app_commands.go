package ui

import (
	"hash/fnv"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/deck"
	"folio/internal/route"
)

// navigateCmd returns a command that asks the app to open path.
func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// clockTickCmd fires on the next whole second.
func clockTickCmd(now time.Time) tea.Cmd {
	wait := now.Truncate(time.Second).Add(time.Second).Sub(now)
	return tea.Tick(wait, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func introFrameCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return introFrameMsg{gen: gen, at: t} })
}

func typeTickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{gen: gen} })
}

// deckSettleCmd schedules the settle of an accepted transition.
func deckSettleCmd(navID string, t deck.Transition) tea.Cmd {
	return tea.Tick(t.Duration, func(time.Time) tea.Msg { return deckSettleMsg{nav: navID, seq: t.Seq} })
}

func deckFrameCmd(navID string) tea.Cmd {
	return tea.Tick(time.Second/deck.TweenFPS, func(time.Time) tea.Msg { return deckFrameMsg{nav: navID} })
}

// Backdrop is a generated scene drawn behind a landing page.
type Backdrop struct {
	Lines []string
}

// Empty reports whether the scene has not been built.
func (b Backdrop) Empty() bool { return len(b.Lines) == 0 }

// loadSceneCmd builds the backdrop for a page off the update loop. The result
// is delivered no sooner than delay, so the loading overlay does not flash.
func loadSceneCmd(page route.Page, gen uint64, width, height int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SceneReadyMsg{Page: page, Gen: gen, Backdrop: buildBackdrop(page, width, height)}
	})
}

var starGlyphs = []byte{'.', '.', '.', '`', '+', '*'}

// buildBackdrop scatters stars over a width x height field. The same page and
// size always give the same scene.
func buildBackdrop(page route.Page, width, height int) Backdrop {
	width, height = max(width, 1), max(height, 1)
	h := fnv.New64a()
	h.Write([]byte(page.Path()))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(width*height)))

	lines := make([]string, height)
	row := make([]byte, width)
	for y := range lines {
		for x := range row {
			row[x] = ' '
			if rng.IntN(13) == 0 {
				row[x] = starGlyphs[rng.IntN(len(starGlyphs))]
			}
		}
		lines[y] = string(row)
	}
	return Backdrop{Lines: lines}
}
