package motion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/spring"
)

// Kind is the way a module turns its targets into output.
type Kind uint8

const (
	// KindDirect modules output their targets unmodified, with no latency.
	KindDirect Kind = iota
	// KindSpring modules output their targets through a pair of spring simulators.
	KindSpring
)

func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindSpring:
		return "spring"
	}
	return "unknown"
}

// Output holds the targets of a module and turns them into a position and a rotation. Rotations are
// stored as (pitch, yaw, roll) vectors in degrees.
type Output struct {
	kind Kind

	position mgl32.Vec3
	rotation mgl32.Vec3

	positionSpring *spring.Simulator
	rotationSpring *spring.Simulator
}

// DirectOutput returns an Output that passes its targets through unmodified.
func DirectOutput() Output {
	return Output{kind: KindDirect}
}

// SpringOutput returns an Output that smooths its position and rotation targets with springs.
func SpringOutput(position, rotation spring.Settings) Output {
	return Output{
		kind:           KindSpring,
		positionSpring: spring.NewSimulator(position),
		rotationSpring: spring.NewSimulator(rotation),
	}
}

// Kind returns the kind of the output.
func (o *Output) Kind() Kind {
	return o.kind
}

func (o *Output) setPosition(v mgl32.Vec3) {
	if o.kind == KindSpring {
		o.positionSpring.SetTarget(v)
		return
	}
	o.position = v
}

func (o *Output) setRotation(v mgl32.Vec3) {
	if o.kind == KindSpring {
		o.rotationSpring.SetTarget(v)
		return
	}
	o.rotation = v
}

// targets returns the stored position and rotation targets.
func (o *Output) targets() (mgl32.Vec3, mgl32.Vec3) {
	if o.kind == KindSpring {
		return o.positionSpring.Target(), o.rotationSpring.Target()
	}
	return o.position, o.rotation
}

// Position returns the position output, advancing the position spring by dt.
func (o *Output) Position(dt float32) mgl32.Vec3 {
	if o.kind == KindSpring {
		return o.positionSpring.Evaluate(dt)
	}
	return o.position
}

// Rotation returns the rotation output, advancing the rotation spring by dt.
func (o *Output) Rotation(dt float32) mgl32.Quat {
	if o.kind == KindSpring {
		return game.EulerToQuat(o.rotationSpring.Evaluate(dt))
	}
	return game.EulerToQuat(o.rotation)
}

// reset clears the output back to no motion.
func (o *Output) reset() {
	if o.kind == KindSpring {
		o.positionSpring.Reset()
		o.rotationSpring.Reset()
		return
	}
	o.position, o.rotation = mgl32.Vec3{}, mgl32.Vec3{}
}
