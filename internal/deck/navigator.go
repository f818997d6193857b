package deck

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultTransition is how long an accepted transition blocks further input.
const DefaultTransition = 1800 * time.Millisecond

// None is reported for the exiting index when no card is animating out.
const None = -1

// ErrEmpty is returned by New when no cards are given.
var ErrEmpty = errors.New("deck: at least one card is required")

// Transition is the handle of an accepted navigator operation. The host must call
// Settle with Seq once Duration has elapsed.
type Transition struct {
	Seq      uint64
	Duration time.Duration
}

// Snapshot is a copy of the navigator state.
type Snapshot struct {
	Current   int
	Passed    []int
	Animating bool
	Exiting   int // None when no card is exiting
}

// Navigator is the card stack state machine. It is not safe for concurrent use;
// it is meant to be driven from a single update loop.
type Navigator struct {
	id       string
	cards    []Card
	duration time.Duration

	current   int
	passed    []int
	animating bool
	exiting   int

	seq      uint64
	disposed bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithTransition overrides the transition duration. Non-positive values are ignored.
func WithTransition(d time.Duration) Option {
	return func(n *Navigator) {
		if d > 0 {
			n.duration = d
		}
	}
}

// WithID sets the instance id used in logs and traces.
func WithID(id string) Option {
	return func(n *Navigator) {
		if id != "" {
			n.id = id
		}
	}
}

// New creates a navigator over a copy of cards. Card indices are reassigned to
// their position in the list.
func New(cards []Card, opts ...Option) (*Navigator, error) {
	if len(cards) == 0 {
		return nil, ErrEmpty
	}
	own := make([]Card, len(cards))
	for i, c := range cards {
		c.Index = i
		own[i] = c
	}
	n := &Navigator{
		id:       uuid.NewString(),
		cards:    own,
		duration: DefaultTransition,
		exiting:  None,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// ID returns the instance id.
func (n *Navigator) ID() string { return n.id }

// Len returns the number of cards.
func (n *Navigator) Len() int { return len(n.cards) }

// Card returns the card at index.
func (n *Navigator) Card(index int) (Card, bool) {
	if index < 0 || index >= len(n.cards) {
		return Card{}, false
	}
	return n.cards[index], true
}

// Current returns the index of the front card.
func (n *Navigator) Current() int { return n.current }

// Passed returns the passed indices in the order they were passed.
func (n *Navigator) Passed() []int { return slices.Clone(n.passed) }

// Animating reports whether a transition is in flight.
func (n *Navigator) Animating() bool { return n.animating }

// ExitingIndex returns the card animating out of view, if any.
func (n *Navigator) ExitingIndex() (int, bool) {
	return n.exiting, n.exiting != None
}

// Duration returns the transition duration.
func (n *Navigator) Duration() time.Duration { return n.duration }

// Disposed reports whether Dispose has been called.
func (n *Navigator) Disposed() bool { return n.disposed }

// IsFirst reports whether there is nothing to retreat to.
func (n *Navigator) IsFirst() bool { return len(n.passed) == 0 }

// IsLast reports whether the front card is the last one.
func (n *Navigator) IsLast() bool { return n.current == len(n.cards)-1 }

// Snapshot returns a copy of the current state.
func (n *Navigator) Snapshot() Snapshot {
	return Snapshot{
		Current:   n.current,
		Passed:    n.Passed(),
		Animating: n.animating,
		Exiting:   n.exiting,
	}
}

// Advance moves to the next card. It is ignored while animating or on the last card.
func (n *Navigator) Advance() (Transition, bool) {
	if !n.ready() || n.current >= len(n.cards)-1 {
		return Transition{}, false
	}
	return n.travelTo(n.current + 1), true
}

// Retreat brings back the most recently passed card. It is ignored while animating
// or when nothing has been passed. The outgoing card is not marked as exiting.
func (n *Navigator) Retreat() (Transition, bool) {
	if !n.ready() || len(n.passed) == 0 {
		return Transition{}, false
	}
	last := len(n.passed) - 1
	n.current = n.passed[last]
	n.passed = n.passed[:last]
	return n.begin(), true
}

// JumpTo moves straight to a queued card. Only the card in front at the time of the
// jump is recorded as passed; the skipped cards stay unpassed, so a later Retreat
// returns directly to the card the jump started from.
func (n *Navigator) JumpTo(target int) (Transition, bool) {
	if !n.ready() || target <= n.current || target >= len(n.cards) {
		return Transition{}, false
	}
	if slices.Contains(n.passed, target) {
		return Transition{}, false
	}
	return n.travelTo(target), true
}

// Settle ends the transition identified by seq. Stale or unknown sequence numbers
// and settles after Dispose are ignored.
func (n *Navigator) Settle(seq uint64) bool {
	if n.disposed || !n.animating || seq != n.seq {
		return false
	}
	n.animating = false
	n.exiting = None
	return true
}

// Dispose invalidates any pending transition. A disposed navigator accepts no
// further operations.
func (n *Navigator) Dispose() {
	n.disposed = true
	n.seq++
}

func (n *Navigator) ready() bool {
	return !n.disposed && !n.animating
}

func (n *Navigator) travelTo(next int) Transition {
	n.exiting = n.current
	n.passed = append(n.passed, n.current)
	n.current = next
	return n.begin()
}

func (n *Navigator) begin() Transition {
	n.animating = true
	n.seq++
	return Transition{Seq: n.seq, Duration: n.duration}
}
