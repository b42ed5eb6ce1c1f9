package spring

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Simulator integrates a damped harmonic oscillator in three dimensions. The simulation is sub-stepped
// with a fixed maximum step so that the result does not depend on the frame rate.
type Simulator struct {
	value        mgl32.Vec3
	velocity     mgl32.Vec3
	acceleration mgl32.Vec3
	target       mgl32.Vec3

	settings Settings
	idle     bool
}

// NewSimulator returns a simulator at rest at the origin. Settings that fail Validate are replaced by
// DefaultSettings.
func NewSimulator(settings Settings) *Simulator {
	return &Simulator{settings: settings.sanitised(), idle: true}
}

// Settings returns the settings the simulator integrates with.
func (s *Simulator) Settings() Settings {
	return s.settings
}

// SetSettings replaces the settings of the simulator without resetting its state.
func (s *Simulator) SetSettings(settings Settings) {
	s.settings = settings.sanitised()
}

// SetTarget sets the equilibrium point of the spring and wakes the simulator up.
func (s *Simulator) SetTarget(target mgl32.Vec3) {
	s.target = target
	s.idle = false
}

// Target returns the current equilibrium point.
func (s *Simulator) Target() mgl32.Vec3 {
	return s.target
}

// Value returns the last simulated value without advancing the simulation.
func (s *Simulator) Value() mgl32.Vec3 {
	return s.value
}

// Velocity returns the last simulated velocity.
func (s *Simulator) Velocity() mgl32.Vec3 {
	return s.velocity
}

// Idle returns true if the spring came to rest and contributes nothing until it is re-targeted.
func (s *Simulator) Idle() bool {
	return s.idle
}

// Reset puts the simulator back at rest at the origin.
func (s *Simulator) Reset() {
	s.value, s.velocity, s.acceleration, s.target = mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}
	s.idle = true
}

// Evaluate advances the simulation by dt seconds and returns the new value. An idle simulator returns
// the zero vector and is left untouched.
func (s *Simulator) Evaluate(dt float32) mgl32.Vec3 {
	if s.idle {
		return mgl32.Vec3{}
	}

	actualStep := dt * s.settings.Speed
	if actualStep <= 0 {
		return s.value
	}

	effectiveStep := math32.Min(game.SpringSubStep, actualStep-game.SpringSubStepEpsilon)
	if effectiveStep <= 0 {
		effectiveStep = actualStep
	}
	steps := int(math32.Round(actualStep / effectiveStep))
	if steps < 1 {
		steps = 1
	} else if steps > game.SpringMaxSubSteps {
		steps = game.SpringMaxSubSteps
		effectiveStep = actualStep / float32(steps)
	}

	remaining := actualStep
	for i := 0; i < steps; i++ {
		h := effectiveStep
		if i == steps-1 {
			// The last step absorbs whatever is left so the sub-steps add up to the frame step.
			h = remaining
		}
		remaining -= h
		s.step(h)
	}

	if s.acceleration.LenSqr() <= game.SpringIdleThreshold {
		s.idle = true
	}
	return s.value
}

// step integrates a single sub-step of length h using velocity Verlet.
func (s *Simulator) step(h float32) {
	s.value = s.value.Add(s.velocity.Mul(h)).Add(s.acceleration.Mul(h * h * 0.5))

	force := s.value.Sub(s.target).Mul(-s.settings.Stiffness).Sub(s.velocity.Mul(s.settings.Damping))
	newAcceleration := force.Mul(1 / s.settings.Mass)

	s.velocity = s.velocity.Add(s.acceleration.Add(newAcceleration).Mul(h * 0.5))
	s.acceleration = newAcceleration
}
