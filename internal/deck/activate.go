package deck

// ActionKind is what a click on a card resolved to.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNavigate
	ActionJump
)

// Action is the outcome of Activate. Route is set for ActionNavigate, Transition for
// ActionJump.
type Action struct {
	Kind       ActionKind
	Route      string
	Transition Transition
}

// Activate applies a click on the card at index. The front card navigates to its
// target route and an interactive queued card is jumped to. Clicks during a
// transition, after Dispose or on any other card are ignored.
func (n *Navigator) Activate(index int) Action {
	if !n.ready() {
		return Action{}
	}
	p := n.VisualStateOf(index)
	switch {
	case p.Kind == KindFront:
		return Action{Kind: ActionNavigate, Route: n.cards[index].TargetRoute}
	case p.Kind == KindQueued && p.Interactive:
		if t, ok := n.JumpTo(index); ok {
			return Action{Kind: ActionJump, Transition: t}
		}
	}
	return Action{}
}
