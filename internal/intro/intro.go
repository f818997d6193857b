// Package intro models the charge-up loading animation shown before the home page
// as an explicit finite-state machine: a counter runs down, a ball drops and bounces
// on the floor, then expands to fill the screen.
//
// Step is pure: it takes a state and an elapsed duration and returns the next state.
// How the expansion accelerates is delegated to an Easing.
package intro

import (
	"math"
	"time"
)

// Phase is a named state of the intro.
type Phase int

const (
	Counting Phase = iota
	Dropping
	Expanding
	Done
)

func (p Phase) String() string {
	switch p {
	case Counting:
		return "counting"
	case Dropping:
		return "dropping"
	case Expanding:
		return "expanding"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

const (
	// CountStep is how long each tick of the counter lasts.
	CountStep = 25 * time.Millisecond
	// FrameStep is the simulation step of the drop and the expansion.
	FrameStep = 16 * time.Millisecond

	countStart = 100

	// Ball heights are percentages of the screen, top to bottom.
	lineY     = 48.0
	floorY    = 88.0
	gravity   = 0.08
	damping   = 0.55
	maxBounce = 3
	restSpeed = 0.2

	ballScale = 24.0
	doneRatio = 0.85
)

// State is a snapshot of the intro.
type State struct {
	Phase      Phase
	Count      int
	ChargeText bool

	BallY    float64
	Velocity float64
	Bounces  int

	Scale    float64
	ScaleVel float64
	MaxScale float64

	carry time.Duration
}

// NewState returns the initial state. maxScale is the size the ball must expand to
// for the intro to finish, in the same unit as its starting size.
func NewState(maxScale float64) State {
	return State{
		Phase:    Counting,
		Count:    countStart,
		BallY:    lineY,
		MaxScale: math.Max(maxScale, ballScale*2),
	}
}

// Progress returns the remaining charge in [0, 1].
func (s State) Progress() float64 {
	return float64(s.Count) / countStart
}

// Expansion returns how far the expansion has come towards finishing, in [0, 1].
func (s State) Expansion() float64 {
	if s.Phase == Done {
		return 1
	}
	if s.Phase != Expanding {
		return 0
	}
	r := (s.Scale - ballScale) / (s.MaxScale*doneRatio - ballScale)
	return math.Min(math.Max(r, 0), 1)
}

// Skip jumps straight to Done.
func Skip(s State) State {
	s.Phase = Done
	s.Count = 0
	s.Scale = s.MaxScale
	s.carry = 0
	return s
}

// Machine steps the intro with a given easing.
type Machine struct {
	Easing Easing
}

// NewMachine returns a machine using easing, or the default exponential easing
// when easing is nil.
func NewMachine(easing Easing) Machine {
	if easing == nil {
		easing = DefaultEasing()
	}
	return Machine{Easing: easing}
}

// Step advances s by dt. Time is consumed in fixed steps; leftover time carries
// over to the next call.
func (m Machine) Step(s State, dt time.Duration) State {
	if s.Phase == Done || dt <= 0 {
		return s
	}
	s.carry += dt
	for s.Phase != Done {
		step := stepFor(s.Phase)
		if s.carry < step {
			break
		}
		s.carry -= step
		s = m.advance(s)
	}
	if s.Phase == Done {
		s.carry = 0
	}
	return s
}

func stepFor(p Phase) time.Duration {
	if p == Counting {
		return CountStep
	}
	return FrameStep
}

func (m Machine) advance(s State) State {
	switch s.Phase {
	case Counting:
		return count(s)
	case Dropping:
		return drop(s)
	case Expanding:
		return m.expand(s)
	}
	return s
}

// count takes countStart+1 ticks: zero stays on screen for one tick before the
// drop starts.
func count(s State) State {
	if s.Count > 0 {
		s.Count--
		return s
	}
	s.ChargeText = true
	s.Phase = Dropping
	s.BallY = lineY
	s.Velocity = 0
	return s
}

func drop(s State) State {
	s.Velocity += gravity
	s.BallY += s.Velocity
	if s.BallY < floorY {
		return s
	}
	s.BallY = floorY
	s.Velocity = -s.Velocity * damping
	s.Bounces++
	if s.Bounces >= maxBounce || math.Abs(s.Velocity) < restSpeed {
		s.Phase = Expanding
		s.Velocity = 0
		s.Scale = ballScale
		s.ScaleVel = 0
	}
	return s
}

func (m Machine) expand(s State) State {
	s.Scale, s.ScaleVel = m.Easing.Ease(s.Scale, s.ScaleVel, s.MaxScale)
	if s.Scale >= s.MaxScale*doneRatio {
		s.Phase = Done
	}
	return s
}
