package motion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/spring"
)

type fakeContext struct {
	state    string
	input    mgl32.Vec2
	velocity mgl32.Vec3
	look     mgl32.Vec3
	ground   bool
}

func (c *fakeContext) ActiveState() string      { return c.state }
func (c *fakeContext) ActiveStateKey() uint64   { return StateKey(c.state) }
func (c *fakeContext) Input() mgl32.Vec2        { return c.input }
func (c *fakeContext) Velocity() mgl32.Vec3     { return c.velocity }
func (c *fakeContext) LookRotation() mgl32.Vec3 { return c.look }
func (c *fakeContext) OnGround() bool           { return c.ground }

const frame = float32(1.0 / 60.0)

// nearVec compares two vectors with an absolute tolerance. mgl32's ApproxEqual falls back to epsilon²
// whenever a component is exactly zero, which rejects float noise around zero.
func nearVec(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

// sameRotation compares two rotations by their effect on the basis vectors, which is insensitive to
// the sign ambiguity of quaternions.
func sameRotation(a, b mgl32.Quat) bool {
	for _, v := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		if !nearVec(a.Rotate(v), b.Rotate(v), 1e-4) {
			return false
		}
	}
	return true
}

func testSpring() spring.Settings {
	return spring.DefaultSettings()
}
