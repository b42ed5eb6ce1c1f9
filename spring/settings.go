package spring

import (
	"github.com/oomph-ac/locomotion/oerror"
)

// Settings describes the physical properties of a spring.
type Settings struct {
	// Stiffness is the Hooke's law constant pulling the value toward its target.
	Stiffness float32 `toml:"stiffness"`
	// Damping is the force opposing the velocity of the value.
	Damping float32 `toml:"damping"`
	// Mass divides the net force into an acceleration.
	Mass float32 `toml:"mass"`
	// Speed scales the frame delta time into simulated time, which changes how fast the spring feels
	// without retuning stiffness and damping.
	Speed float32 `toml:"speed"`
}

// DefaultSettings returns an under-damped spring that settles in roughly a second.
func DefaultSettings() Settings {
	return Settings{Stiffness: 100, Damping: 10, Mass: 1, Speed: 1}
}

// Validate returns an error if the settings would make the simulation degenerate.
func (s Settings) Validate() error {
	switch {
	case s.Mass <= 0:
		return oerror.New("spring: mass must be positive, got %v", s.Mass)
	case s.Speed <= 0:
		return oerror.New("spring: speed must be positive, got %v", s.Speed)
	case s.Stiffness < 0:
		return oerror.New("spring: stiffness must not be negative, got %v", s.Stiffness)
	case s.Damping < 0:
		return oerror.New("spring: damping must not be negative, got %v", s.Damping)
	}
	return nil
}

// sanitised returns the settings unchanged when they are valid, and DefaultSettings otherwise. A
// degenerate mass cannot be floored to a small positive value: the resulting natural frequency is far
// beyond what the fixed sub-step can integrate.
func (s Settings) sanitised() Settings {
	if s.Validate() != nil {
		return DefaultSettings()
	}
	return s
}
