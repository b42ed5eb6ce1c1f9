package motion

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LeanSettings configures the strafe lean.
type LeanSettings struct {
	// MaxAngle is the roll at full strafe input, in degrees.
	MaxAngle float32 `toml:"max_angle"`
	// Offset is the sideways shift at full strafe input, in metres.
	Offset float32 `toml:"offset"`
}

// Lean rolls the camera into the strafe direction instantly.
type Lean struct {
	Base

	settings LeanSettings
}

// NewLean returns a direct lean motion.
func NewLean(settings LeanSettings) *Lean {
	return &Lean{Base: NewBase(DirectOutput()), settings: settings}
}

// MotionUpdate ...
func (l *Lean) MotionUpdate(float32) {
	if !l.IsUpdatable() {
		return
	}
	strafe := mgl32.Clamp(l.Context().Input().X(), -1, 1)
	l.SetTargetPosition(mgl32.Vec3{strafe * l.settings.Offset, 0, 0})
	l.SetTargetRotation(mgl32.Vec3{0, 0, -strafe * l.settings.MaxAngle})
}
