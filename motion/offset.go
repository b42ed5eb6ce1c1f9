package motion

import "github.com/go-gl/mathgl/mgl32"

// Offset is a module with a constant raw target, such as the camera drop of a crouch.
type Offset struct {
	Base

	position, rotation mgl32.Vec3
}

// NewOffset returns an Offset with the given raw position and (pitch, yaw, roll) rotation in degrees.
func NewOffset(out Output, position, rotation mgl32.Vec3) *Offset {
	return &Offset{Base: NewBase(out), position: position, rotation: rotation}
}

// SetRaw replaces the raw targets of the offset.
func (o *Offset) SetRaw(position, rotation mgl32.Vec3) {
	o.position, o.rotation = position, rotation
}

// MotionUpdate ...
func (o *Offset) MotionUpdate(float32) {
	if !o.IsUpdatable() {
		return
	}
	o.SetTargetPosition(o.position)
	o.SetTargetRotation(o.rotation)
}
