// Package typewriter cycles through a list of messages, typing each one out,
// holding it, deleting it and moving on to the next.
package typewriter

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Phase is the current activity of the typewriter.
type Phase int

const (
	Waiting Phase = iota
	Typing
	Holding
	Deleting
	Gap
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	case Deleting:
		return "deleting"
	case Gap:
		return "gap"
	default:
		return "unknown"
	}
}

// Timing holds the delays between steps.
type Timing struct {
	Start       time.Duration // before the first keystroke
	Type        time.Duration // per typed rune
	Delete      time.Duration // per deleted rune
	FirstDelete time.Duration // per deleted rune of the first message
	Hold        time.Duration // full message on screen
	Gap         time.Duration // empty line between messages
}

// DefaultTiming mirrors the home page greeting.
var DefaultTiming = Timing{
	Start:       2 * time.Second,
	Type:        55 * time.Millisecond,
	Delete:      20 * time.Millisecond,
	FirstDelete: 70 * time.Millisecond,
	Hold:        2 * time.Second,
	Gap:         600 * time.Millisecond,
}

// State is the typewriter position.
type State struct {
	Phase Phase
	Msg   int
	Shown int
}

// Typewriter is an immutable message list plus timing.
type Typewriter struct {
	messages [][]rune
	timing   Timing
}

// New creates a typewriter. Empty message lists are allowed; such a typewriter
// never shows anything.
func New(messages []string, timing Timing) *Typewriter {
	w := &Typewriter{timing: timing}
	for _, m := range messages {
		w.messages = append(w.messages, []rune(m))
	}
	return w
}

// Start returns the initial state and the delay before the first Step.
func (w *Typewriter) Start() (State, time.Duration) {
	return State{Phase: Waiting}, w.timing.Start
}

// Step performs the pending action of s and returns the new state and the delay
// before the next Step.
func (w *Typewriter) Step(s State) (State, time.Duration) {
	if len(w.messages) == 0 {
		return State{Phase: Waiting}, w.timing.Start
	}
	s.Msg %= len(w.messages)
	msg := w.messages[s.Msg]

	switch s.Phase {
	case Waiting:
		s.Phase, s.Shown = Typing, 0
		return w.typed(s, len(msg))
	case Typing:
		s.Shown = min(s.Shown+1, len(msg))
		return w.typed(s, len(msg))
	case Holding:
		s.Phase = Deleting
		return s, w.deleteDelay(s.Msg)
	case Deleting:
		s.Shown = max(s.Shown-1, 0)
		if s.Shown == 0 {
			s.Phase = Gap
			return s, w.timing.Gap
		}
		return s, w.deleteDelay(s.Msg)
	case Gap:
		s.Phase = Typing
		s.Msg = (s.Msg + 1) % len(w.messages)
		s.Shown = 0
		return w.typed(s, len(w.messages[s.Msg]))
	}
	return s, w.timing.Type
}

func (w *Typewriter) typed(s State, total int) (State, time.Duration) {
	if s.Shown >= total {
		s.Phase = Holding
		return s, w.timing.Hold
	}
	return s, w.timing.Type
}

func (w *Typewriter) deleteDelay(msg int) time.Duration {
	if msg == 0 {
		return w.timing.FirstDelete
	}
	return w.timing.Delete
}

// Text returns the visible part of the current message.
func (w *Typewriter) Text(s State) string {
	if len(w.messages) == 0 {
		return ""
	}
	msg := w.messages[s.Msg%len(w.messages)]
	return string(msg[:min(max(s.Shown, 0), len(msg))])
}

// Width returns the widest message in terminal columns, so the caret can be
// padded to a stable position.
func (w *Typewriter) Width() int {
	widest := 0
	for _, m := range w.messages {
		widest = max(widest, runewidth.StringWidth(string(m)))
	}
	return widest
}

// Segment is a run of text that is either highlighted or plain.
type Segment struct {
	Text      string
	Highlight bool
}

// Segments splits text into plain and highlighted runs. A highlight only applies
// once the whole phrase is visible.
func Segments(text string, highlights []string) []Segment {
	var out []Segment
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Segment{Text: plain.String()})
			plain.Reset()
		}
	}
	for len(text) > 0 {
		if hw := prefixOf(text, highlights); hw != "" {
			flush()
			out = append(out, Segment{Text: hw, Highlight: true})
			text = text[len(hw):]
			continue
		}
		next := len(text)
		for _, hw := range highlights {
			if hw == "" {
				continue
			}
			if i := strings.Index(text, hw); i > 0 && i < next {
				next = i
			}
		}
		plain.WriteString(text[:next])
		text = text[next:]
	}
	flush()
	return out
}

func prefixOf(text string, highlights []string) string {
	for _, hw := range highlights {
		if hw != "" && strings.HasPrefix(text, hw) {
			return hw
		}
	}
	return ""
}
