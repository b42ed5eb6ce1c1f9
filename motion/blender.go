package motion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
)

// Blender composes the output of every registered module into a single position offset and rotation.
type Blender struct {
	ctx   Context
	table *Table

	weight float32

	position mgl32.Vec3
	rotation mgl32.Quat
}

// NewBlender returns a blender with an empty table and a master weight of 1. Modules registered
// to it are initialized with ctx.
func NewBlender(ctx Context) *Blender {
	return &Blender{
		ctx:      ctx,
		table:    NewTable(),
		weight:   1,
		rotation: mgl32.QuatIdent(),
	}
}

// Register initializes the modules with the blender's context and appends them to the entry of state.
func (b *Blender) Register(state string, modules ...Module) {
	for _, m := range modules {
		assert.IsTrue(m != nil, game.ErrorNilModule, state)
		m.Initialize(b.ctx, state)
	}
	b.table.Add(state, modules...)
}

// Table returns the motion table of the blender.
func (b *Blender) Table() *Table {
	return b.table
}

// Weight returns the master weight of the blender.
func (b *Blender) Weight() float32 {
	return b.weight
}

// SetWeight sets the master weight of the blender, clamped to [0, 1]. A weight of 0 disables all motion.
func (b *Blender) SetWeight(w float32) {
	b.weight = mgl32.Clamp(w, 0, 1)
}

// NotifyStateChange forwards a state change to every module of the table.
func (b *Blender) NotifyStateChange(state string) {
	for _, m := range b.table.All() {
		m.OnStateChange(state)
	}
}

// BlendMotions updates every module and composes their output. Every module is updated each frame;
// modules gate themselves on the active state. The rotation accumulated from earlier modules rotates
// the position of later ones, so the order of the table matters.
func (b *Blender) BlendMotions(dt float32) (mgl32.Vec3, mgl32.Quat) {
	pos, rot := mgl32.Vec3{}, mgl32.QuatIdent()
	for _, m := range b.table.All() {
		m.MotionUpdate(dt)
		pos = pos.Add(rot.Rotate(m.Position(dt)))
		rot = rot.Mul(m.Rotation(dt))
	}

	b.position = game.LerpVec3(mgl32.Vec3{}, pos, b.weight)
	if rot.W < 0 {
		// q and -q are the same rotation, and QuatSlerp only takes the short arc from identity when W >= 0.
		rot = rot.Scale(-1)
	}
	b.rotation = mgl32.QuatSlerp(mgl32.QuatIdent(), rot, b.weight)
	return b.position, b.rotation
}

// Position returns the position offset computed by the last call to BlendMotions.
func (b *Blender) Position() mgl32.Vec3 {
	return b.position
}

// Rotation returns the rotation computed by the last call to BlendMotions.
func (b *Blender) Rotation() mgl32.Quat {
	return b.rotation
}
