package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/spring"
)

// LandingSettings configures the dip of the camera when touching the ground.
type LandingSettings struct {
	// Scale is the drop in metres per m/s of impact speed.
	Scale float32 `toml:"scale"`
	// MaxDrop bounds the drop in metres.
	MaxDrop float32 `toml:"max_drop"`
	// PitchScale is the downward pitch in degrees per metre of drop.
	PitchScale float32 `toml:"pitch_scale"`
	// Duration is how long the drop is held before recovering, in seconds.
	Duration float32         `toml:"duration"`
	Spring   spring.Settings `toml:"spring"`
}

// Landing dips the camera when the character lands, proportionally to how fast it was falling.
type Landing struct {
	Base

	settings LandingSettings

	wasGrounded bool
	fallSpeed   float32
	drop        float32
	timer       float32
}

// NewLanding returns a spring driven landing motion.
func NewLanding(settings LandingSettings) *Landing {
	return &Landing{Base: NewBase(SpringOutput(settings.Spring, settings.Spring)), settings: settings}
}

// Drop returns the drop of the current landing, or 0 if no landing is being played.
func (l *Landing) Drop() float32 {
	if l.timer <= 0 {
		return 0
	}
	return l.drop
}

// MotionUpdate ...
func (l *Landing) MotionUpdate(dt float32) {
	if !l.IsUpdatable() {
		return
	}
	ctx := l.Context()
	grounded := ctx.OnGround()
	if !grounded {
		l.fallSpeed = math32.Max(l.fallSpeed, -ctx.Velocity().Y())
	} else if !l.wasGrounded && l.fallSpeed > 0 {
		l.drop = math32.Min(l.fallSpeed*l.settings.Scale, l.settings.MaxDrop)
		l.timer = l.settings.Duration
		l.fallSpeed = 0
	}
	l.wasGrounded = grounded

	if l.timer <= 0 {
		l.SetTargetPosition(mgl32.Vec3{})
		l.SetTargetRotation(mgl32.Vec3{})
		return
	}
	l.timer -= dt
	l.SetTargetPosition(mgl32.Vec3{0, -l.drop, 0})
	l.SetTargetRotation(mgl32.Vec3{l.drop * l.settings.PitchScale, 0, 0})
}
