package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/spring"
)

// BreathingSettings configures the idle breathing sway.
type BreathingSettings struct {
	// Rate is the amount of breaths per second.
	Rate float32 `toml:"rate"`
	// Amplitude is the vertical travel of the camera in metres.
	Amplitude float32 `toml:"amplitude"`
	// PitchAmplitude is the pitch travel of the camera in degrees.
	PitchAmplitude float32 `toml:"pitch_amplitude"`
	// MovingScale scales the breathing while the character moves.
	MovingScale float32       `toml:"moving_scale"`
	Spring      spring.Settings `toml:"spring"`
}

// Breathing is an ambient sinusoidal sway, usually bound to DefaultState.
type Breathing struct {
	Base

	settings BreathingSettings
	phase    float32
}

// NewBreathing returns a spring driven breathing motion.
func NewBreathing(settings BreathingSettings) *Breathing {
	return &Breathing{Base: NewBase(SpringOutput(settings.Spring, settings.Spring)), settings: settings}
}

// MotionUpdate ...
func (b *Breathing) MotionUpdate(dt float32) {
	if !b.IsUpdatable() {
		return
	}
	b.phase = math32.Mod(b.phase+dt*b.settings.Rate*2*math32.Pi, 2*math32.Pi)

	scale := float32(1)
	if b.Context().Input().LenSqr() > 0 {
		scale = b.settings.MovingScale
	}
	s := math32.Sin(b.phase)
	b.SetTargetPosition(mgl32.Vec3{0, s * b.settings.Amplitude, 0}, scale)
	b.SetTargetRotation(mgl32.Vec3{s * b.settings.PitchAmplitude, 0, 0}, scale)
}
