package deck

// Card is one topic tile in the stack.
type Card struct {
	Index       int
	Title       string
	Subtitle    string
	ImageRef    string
	TargetRoute string
}

// Side is the edge of the stage a card is anchored to.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SideOf returns the fixed side of the card at index: even indices sit on the right,
// odd indices on the left.
func SideOf(index int) Side {
	if index%2 == 0 {
		return SideRight
	}
	return SideLeft
}
