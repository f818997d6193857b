package deck

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// TweenFPS is the frame rate the Tweener's spring is tuned for.
const TweenFPS = 30

const tweenEpsilon = 0.01

type axis struct {
	pos, vel float64
}

func (a *axis) step(s harmonica.Spring, target float64) {
	a.pos, a.vel = s.Update(a.pos, a.vel, target)
}

func (a axis) settled(target float64) bool {
	return math.Abs(a.pos-target) < tweenEpsilon && math.Abs(a.vel) < tweenEpsilon
}

type cardTween struct {
	offset, depth, scale, opacity axis
}

// Tweener smooths placement changes with a damped spring so cards glide between
// positions instead of jumping. It only reads placements.
type Tweener struct {
	spring harmonica.Spring
	cards  []cardTween
	primed bool
}

// NewTweener creates a tweener for n cards.
func NewTweener(n int) *Tweener {
	return &Tweener{
		spring: harmonica.NewSpring(harmonica.FPS(TweenFPS), 6.0, 0.8),
		cards:  make([]cardTween, n),
	}
}

// Step advances every card one frame towards its target placement and returns the
// placements to draw. The first call snaps to the targets.
func (t *Tweener) Step(targets []Placement) []Placement {
	if len(t.cards) != len(targets) {
		t.cards = make([]cardTween, len(targets))
		t.primed = false
	}
	out := make([]Placement, len(targets))
	for i, p := range targets {
		c := &t.cards[i]
		if !t.primed {
			c.offset = axis{pos: p.Offset}
			c.depth = axis{pos: p.Depth}
			c.scale = axis{pos: p.Scale}
			c.opacity = axis{pos: p.Opacity}
		} else {
			c.offset.step(t.spring, p.Offset)
			c.depth.step(t.spring, p.Depth)
			c.scale.step(t.spring, p.Scale)
			c.opacity.step(t.spring, p.Opacity)
		}
		p.Offset = c.offset.pos
		p.Depth = c.depth.pos
		p.Scale = c.scale.pos
		p.Opacity = min(max(c.opacity.pos, 0), 1)
		out[i] = p
	}
	t.primed = true
	return out
}

// Settled reports whether every card has come to rest on its target.
func (t *Tweener) Settled(targets []Placement) bool {
	if !t.primed || len(t.cards) != len(targets) {
		return false
	}
	for i, p := range targets {
		c := t.cards[i]
		if !c.offset.settled(p.Offset) || !c.depth.settled(p.Depth) ||
			!c.scale.settled(p.Scale) || !c.opacity.settled(p.Opacity) {
			return false
		}
	}
	return true
}
