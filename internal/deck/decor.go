package deck

// Decorator adjusts the cosmetic part of a placement. Decorators must not depend on
// or change navigator state beyond what the placement carries.
type Decorator interface {
	Decorate(index int, p Placement) Placement
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(index int, p Placement) Placement

// Decorate implements Decorator.
func (f DecoratorFunc) Decorate(index int, p Placement) Placement { return f(index, p) }

// Decorate runs p through each decorator in order.
func Decorate(index int, p Placement, ds ...Decorator) Placement {
	for _, d := range ds {
		if d != nil {
			p = d.Decorate(index, p)
		}
	}
	return p
}

// Tilt leans visible cards towards the pointer. Pointer state lives on the Tilt
// value, so every widget owns its own.
type Tilt struct {
	// Max is the lean, in columns, of the front card with the pointer at an edge.
	Max float64

	pointer float64
}

// NewTilt creates a tilt decorator with the given maximum lean.
func NewTilt(maxLean float64) *Tilt {
	return &Tilt{Max: maxLean}
}

// Track records the pointer column within a stage of the given width.
func (t *Tilt) Track(x, width int) {
	if width <= 1 {
		t.pointer = 0
		return
	}
	p := float64(x)/float64(width-1)*2 - 1
	t.pointer = min(max(p, -1), 1)
}

// Reset centres the pointer.
func (t *Tilt) Reset() { t.pointer = 0 }

// Pointer returns the normalised pointer position in [-1, 1].
func (t *Tilt) Pointer() float64 { return t.pointer }

// Decorate implements Decorator. Cards further back lean less.
func (t *Tilt) Decorate(_ int, p Placement) Placement {
	if !p.Visible() {
		return p
	}
	p.Lean = t.pointer * t.Max * p.Scale
	return p
}

// Shimmer sweeps a highlight column across the front card once per Start.
type Shimmer struct {
	// Period is the number of steps one sweep takes.
	Period int

	phase  int
	active bool
}

// NewShimmer creates an idle shimmer with the given period.
func NewShimmer(period int) *Shimmer {
	return &Shimmer{Period: period}
}

// Start begins a new sweep from the left edge.
func (s *Shimmer) Start() {
	s.phase = 0
	s.active = s.Period > 0
}

// Step advances the sweep by one frame. The shimmer goes idle after Period steps.
func (s *Shimmer) Step() {
	if !s.active {
		return
	}
	s.phase++
	if s.phase >= s.Period {
		s.phase, s.active = 0, false
	}
}

// Active reports whether a sweep is running.
func (s *Shimmer) Active() bool { return s.active }

// Phase returns the current sweep position.
func (s *Shimmer) Phase() int { return s.phase }

// Decorate implements Decorator. Only the front card glints, and only mid-sweep.
func (s *Shimmer) Decorate(_ int, p Placement) Placement {
	if p.Kind != KindFront || !s.active {
		return p
	}
	p.Glint = s.phase
	return p
}
