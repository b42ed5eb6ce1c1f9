package player

import "github.com/go-gl/mathgl/mgl32"

// Input is the input of a character for a single frame.
type Input struct {
	// Move is the movement input: X is strafe (right positive) and Y is forward. Its length should not
	// exceed 1.
	Move mgl32.Vec2
	// LookDelta is the change of the look rotation requested this frame: X is yaw and Y is pitch, both
	// in degrees.
	LookDelta mgl32.Vec2

	Jump     bool
	Crouch   bool
	Interact bool
}

// pressed returns true if the button read by f went down this frame.
func (p *Player) pressed(f func(Input) bool) bool {
	return f(p.input) && !f(p.prevInput)
}

func (p *Player) jumpPressed() bool {
	return p.pressed(func(in Input) bool { return in.Jump })
}

func (p *Player) interactPressed() bool {
	return p.pressed(func(in Input) bool { return in.Interact })
}

// moveVector returns the horizontal world space direction of the movement input scaled by speed.
func (p *Player) moveVector(speed float32) mgl32.Vec3 {
	move := p.input.Move
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	forward := p.forward()
	right := mgl32.Vec3{-forward.Z(), 0, forward.X()}
	return forward.Mul(move.Y()).Add(right.Mul(move.X())).Mul(speed)
}
