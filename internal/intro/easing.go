package intro

import "github.com/charmbracelet/harmonica"

// Easing moves a value towards a target by one frame. It returns the new value and
// velocity; implementations that do not model velocity return zero.
type Easing interface {
	Ease(pos, vel, target float64) (float64, float64)
}

// Exponential closes a fixed fraction of the remaining distance every frame.
type Exponential struct {
	Speed float64
}

// Ease implements Easing.
func (e Exponential) Ease(pos, _, target float64) (float64, float64) {
	return pos + (target-pos)*e.Speed, 0
}

// Spring follows a damped harmonic spring.
type Spring struct {
	spring harmonica.Spring
}

// NewSpring creates a spring easing stepping at the intro frame rate.
// angularFrequency sets the speed, damping the bounciness (1 is critically damped).
func NewSpring(angularFrequency, damping float64) Spring {
	dt := FrameStep.Seconds()
	return Spring{spring: harmonica.NewSpring(dt, angularFrequency, damping)}
}

// Ease implements Easing.
func (s Spring) Ease(pos, vel, target float64) (float64, float64) {
	return s.spring.Update(pos, vel, target)
}

// DefaultEasing is the slow exponential expansion.
func DefaultEasing() Easing {
	return Exponential{Speed: 0.015}
}

// EasingByName resolves a configured easing name. Unknown names fall back to the
// default.
func EasingByName(name string) Easing {
	switch name {
	case "spring":
		return NewSpring(4.0, 0.6)
	case "fast":
		return Exponential{Speed: 0.08}
	default:
		return DefaultEasing()
	}
}
