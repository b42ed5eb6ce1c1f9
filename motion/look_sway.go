package motion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/spring"
)

// LookSwaySettings configures the lag of the view behind fast look movements.
type LookSwaySettings struct {
	// Lag is the amount of seconds of look movement the view trails behind.
	Lag float32 `toml:"lag"`
	// MaxAngle bounds the sway on every axis, in degrees.
	MaxAngle float32 `toml:"max_angle"`
	// PositionFactor converts the yaw sway into a sideways shift, in metres per degree.
	PositionFactor float32         `toml:"position_factor"`
	Spring         spring.Settings `toml:"spring"`
}

// LookSway trails the view behind changes in look rotation.
type LookSway struct {
	Base

	settings LookSwaySettings
	lastLook mgl32.Vec3
	primed   bool
}

// NewLookSway returns a spring driven look sway.
func NewLookSway(settings LookSwaySettings) *LookSway {
	return &LookSway{Base: NewBase(SpringOutput(settings.Spring, settings.Spring)), settings: settings}
}

// MotionUpdate ...
func (l *LookSway) MotionUpdate(dt float32) {
	if !l.IsUpdatable() || dt <= 0 {
		return
	}
	look := l.Context().LookRotation()
	if !l.primed {
		l.lastLook, l.primed = look, true
	}
	delta := look.Sub(l.lastLook)
	delta[1] = game.WrapYawDelta(delta[1])
	l.lastLook = look

	// Angular speed in degrees per second, trailed by Lag seconds.
	sway := game.ClampVec3(mgl32.Vec3{-delta[0], -delta[1], delta[1] * 0.5}.Mul(l.settings.Lag/dt), l.settings.MaxAngle)
	l.SetTargetRotation(sway)
	l.SetTargetPosition(mgl32.Vec3{sway[1] * l.settings.PositionFactor, 0, 0})
}
