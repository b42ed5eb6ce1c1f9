package motion

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Module is a unit of procedural motion. Every frame the blender calls MotionUpdate, which derives raw
// targets from the Context, and then reads Position and Rotation.
type Module interface {
	// Initialize binds the module to the character context and to the state it belongs to.
	Initialize(ctx Context, state string)
	// MotionUpdate derives the raw targets of the module for this frame. Modules that are not updatable
	// leave their targets untouched.
	MotionUpdate(dt float32)
	// Position returns the position contribution of the module.
	Position(dt float32) mgl32.Vec3
	// Rotation returns the rotation contribution of the module.
	Rotation(dt float32) mgl32.Quat
	// OnStateChange is called on every module when the character changes state.
	OnStateChange(state string)
	// State returns the state identifier the module belongs to.
	State() string
	// Weight returns the weight applied to the raw targets of the module.
	Weight() float32
	// SetWeight sets the weight of the module, clamped to [0, 1].
	SetWeight(w float32)
	// Kind returns whether the module is a direct or a spring module.
	Kind() Kind
}

// Base implements everything a Module needs except MotionUpdate. Concrete motions embed it and
// forward their raw targets through SetTargetPosition and SetTargetRotation.
type Base struct {
	Output

	ctx      Context
	state    string
	stateKey uint64
	weight   float32
}

// NewBase returns a Base with the given output and a weight of 1.
func NewBase(out Output) Base {
	return Base{Output: out, weight: 1}
}

// Initialize ...
func (b *Base) Initialize(ctx Context, state string) {
	b.ctx = ctx
	b.state = state
	b.stateKey = StateKey(state)
}

// Context returns the context the module was initialized with.
func (b *Base) Context() Context {
	return b.ctx
}

// State ...
func (b *Base) State() string {
	return b.state
}

// Weight ...
func (b *Base) Weight() float32 {
	return b.weight
}

// SetWeight ...
func (b *Base) SetWeight(w float32) {
	b.weight = mgl32.Clamp(w, 0, 1)
}

// IsUpdatable returns true if the module belongs to DefaultState or to the character's active state.
func (b *Base) IsUpdatable() bool {
	if b.ctx == nil {
		return false
	}
	return b.stateKey == defaultKey || b.stateKey == b.ctx.ActiveStateKey()
}

// SetTargetPosition weighs the raw position by the module weight and any extra multipliers, then stores
// it as the position target.
func (b *Base) SetTargetPosition(raw mgl32.Vec3, multipliers ...float32) {
	b.setPosition(raw.Mul(b.scale(multipliers)))
}

// SetTargetRotation weighs the raw (pitch, yaw, roll) rotation in degrees by the module weight and any
// extra multipliers, then stores it as the rotation target.
func (b *Base) SetTargetRotation(raw mgl32.Vec3, multipliers ...float32) {
	b.setRotation(raw.Mul(b.scale(multipliers)))
}

// Targets returns the weighted position and rotation targets currently stored.
func (b *Base) Targets() (position, rotation mgl32.Vec3) {
	return b.targets()
}

// OnStateChange relaxes the targets of a module that belongs to another state, so that it returns to
// rest instead of holding its last contribution.
func (b *Base) OnStateChange(state string) {
	if b.state == DefaultState || b.state == state {
		return
	}
	b.SetTargetPosition(mgl32.Vec3{})
	b.SetTargetRotation(mgl32.Vec3{})
}

func (b *Base) scale(multipliers []float32) float32 {
	s := b.weight
	for _, m := range multipliers {
		s *= m
	}
	return s
}
