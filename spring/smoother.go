package spring

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
)

// Smoother moves a scalar toward a target with critically damped smoothing. Unlike Simulator it never
// overshoots, which makes it suitable for driving interpolation factors.
type Smoother struct {
	// TimeConstant controls how quickly the value catches up with its target, in seconds.
	TimeConstant float32

	value, velocity float64
}

// Value returns the current smoothed value.
func (s *Smoother) Value() float32 {
	return float32(s.value)
}

// Reset places the smoother at v with no velocity.
func (s *Smoother) Reset(v float32) {
	s.value, s.velocity = float64(v), 0
}

// Step advances the smoother by dt seconds toward target and returns the new value.
func (s *Smoother) Step(target, dt float32) float32 {
	if dt <= 0 {
		return s.Value()
	}
	tc := math32.Max(s.TimeConstant, 1e-3)
	sp := harmonica.NewSpring(float64(dt), float64(2/tc), 1.0)
	s.value, s.velocity = sp.Update(s.value, s.velocity, float64(target))
	return s.Value()
}
