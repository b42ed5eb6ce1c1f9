package motion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// DefaultState is the state identifier of modules that are active regardless of the character's state.
const DefaultState = "Default"

// defaultKey is the hashed DefaultState.
var defaultKey = StateKey(DefaultState)

// StateKey hashes a state identifier so that the per-frame activity gate compares integers.
func StateKey(state string) uint64 {
	return xxh3.HashString(state)
}

// Context is the read-only view of the character that motion modules derive their targets from. It is
// supplied once when a module is initialized.
type Context interface {
	// ActiveState returns the name of the character's current top-level state.
	ActiveState() string
	// ActiveStateKey returns StateKey(ActiveState()).
	ActiveStateKey() uint64
	// Input returns the movement input: X is strafe (right positive) and Y is forward.
	Input() mgl32.Vec2
	// Velocity returns the velocity of the character in world space.
	Velocity() mgl32.Vec3
	// LookRotation returns the look rotation of the character: pitch, yaw and roll in degrees.
	LookRotation() mgl32.Vec3
	// OnGround returns true if the character is standing on the ground.
	OnGround() bool
}
