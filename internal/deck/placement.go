package deck

import (
	"fmt"
	"math"
	"slices"
)

// Kind classifies a card relative to the navigator state.
type Kind int

const (
	KindQueued Kind = iota
	KindFront
	KindExiting
	KindPassed
	KindStale
)

func (k Kind) String() string {
	switch k {
	case KindQueued:
		return "queued"
	case KindFront:
		return "front"
	case KindExiting:
		return "exiting"
	case KindPassed:
		return "passed"
	case KindStale:
		return "stale"
	default:
		return "unknown"
	}
}

// InteractiveDepth is the number of queued cards behind the front card that still
// accept clicks.
const InteractiveDepth = 3

// Placement is the visual state of one card.
//
// Offset is the distance from the card's side edge in percent of the stage width.
// Depth is the z translation, positive towards the viewer. Lean and Glint are
// cosmetic and only ever set by decorators.
type Placement struct {
	Kind        Kind
	Side        Side
	Offset      float64
	Depth       float64
	Scale       float64
	Opacity     float64
	Blur        float64
	Z           int
	Interactive bool

	Lean  float64
	Glint int
}

func (p Placement) String() string {
	return fmt.Sprintf("%s %s offset=%.0f%% depth=%.0f scale=%.2f opacity=%.2f blur=%.1f z=%d interactive=%t",
		p.Kind, p.Side, p.Offset, p.Depth, p.Scale, p.Opacity, p.Blur, p.Z, p.Interactive)
}

// Visible reports whether the card is drawn at all.
func (p Placement) Visible() bool { return p.Opacity > 0 }

// VisualStateOf computes the placement of the card at index. Indices outside the
// deck are reported as stale.
func (n *Navigator) VisualStateOf(index int) Placement {
	side := SideOf(index)
	switch {
	case index < 0 || index >= len(n.cards):
		return stalePlacement(side)
	case index == n.exiting:
		return Placement{
			Kind:    KindExiting,
			Side:    side,
			Offset:  -5,
			Depth:   300,
			Scale:   1.2,
			Opacity: 0,
			Z:       60,
			Glint:   None,
		}
	case slices.Contains(n.passed, index):
		return Placement{
			Kind:    KindPassed,
			Side:    side,
			Offset:  -50,
			Depth:   200,
			Scale:   0.8,
			Opacity: 0,
			Blur:    10,
			Z:       0,
			Glint:   None,
		}
	case index == n.current:
		return Placement{
			Kind:        KindFront,
			Side:        side,
			Offset:      8,
			Depth:       0,
			Scale:       1,
			Opacity:     1,
			Z:           50,
			Interactive: true,
			Glint:       None,
		}
	case index < n.current:
		return stalePlacement(side)
	}

	d := float64(index - n.current)
	return Placement{
		Kind:        KindQueued,
		Side:        side,
		Offset:      8,
		Depth:       -200 * d,
		Scale:       math.Max(1-0.1*d, 0.5),
		Opacity:     math.Max(0.8-0.12*d, 0.2),
		Blur:        0.5 * d,
		Z:           40 - int(d),
		Interactive: index-n.current <= InteractiveDepth,
		Glint:       None,
	}
}

// Placements returns the placement of every card, in card order.
func (n *Navigator) Placements() []Placement {
	out := make([]Placement, len(n.cards))
	for i := range n.cards {
		out[i] = n.VisualStateOf(i)
	}
	return out
}

func stalePlacement(side Side) Placement {
	return Placement{
		Kind:    KindStale,
		Side:    side,
		Offset:  50,
		Depth:   -500,
		Scale:   0.3,
		Opacity: 0,
		Blur:    5,
		Z:       0,
		Glint:   None,
	}
}
