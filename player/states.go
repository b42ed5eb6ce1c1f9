package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/game"
)

const (
	StateWalk     fsm.ID = "Walk"
	StateCrouch   fsm.ID = "Crouch"
	StateAirborne fsm.ID = "Airborne"
	StateLadder   fsm.ID = "Ladder"
	StatePush     fsm.ID = "Push"
	StateCutscene fsm.ID = "Cutscene"
	StateDead     fsm.ID = "Dead"
)

// state is embedded by every player state.
type state struct {
	fsm.Base
	p *Player
}

// toDead is the transition checked first by states the player can die in.
func (s *state) toDead() fsm.Transition {
	return fsm.Transition{
		Target:    StateDead,
		Predicate: func() bool { return s.p.dead },
		Payload: func() fsm.Payload {
			return &DeathPayload{LookAt: s.p.deathLookAt}
		},
	}
}

// walk moves the player over the ground.
type walk struct {
	state
}

func newWalk(p *Player) fsm.State {
	s := &walk{state: state{p: p}}
	s.Base = fsm.NewBase(StateWalk, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateAirborne, Predicate: func() bool { return !p.onGround }},
			{Target: StateCrouch, Predicate: func() bool { return p.input.Crouch }},
		}
	})
	return s
}

func (s *walk) OnStateEnter(pl fsm.Payload) {
	s.Base.OnStateEnter(pl)
	s.p.eyeTarget = s.p.settings.Movement.EyeHeight
}

func (s *walk) OnStateUpdate(float32) {
	s.p.applyLook()
	if s.p.jumpPressed() {
		s.p.jumpQueued = true
	}
}

func (s *walk) OnStateFixedUpdate(float32) {
	groundMove(s.p, s.p.settings.Movement.WalkSpeed, true)
}

// crouch moves the player over the ground slowly with a lowered camera.
type crouch struct {
	state
}

func newCrouch(p *Player) fsm.State {
	s := &crouch{state: state{p: p}}
	s.Base = fsm.NewBase(StateCrouch, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateAirborne, Predicate: func() bool { return !p.onGround }},
			{Target: StateWalk, Predicate: func() bool { return !p.input.Crouch }},
		}
	})
	return s
}

func (s *crouch) OnStateEnter(pl fsm.Payload) {
	s.Base.OnStateEnter(pl)
	s.p.eyeTarget = s.p.settings.Movement.CrouchEyeHeight
}

func (s *crouch) OnStateUpdate(float32) {
	s.p.applyLook()
}

func (s *crouch) OnStateFixedUpdate(float32) {
	groundMove(s.p, s.p.settings.Movement.CrouchSpeed, false)
}

// groundMove sets the horizontal velocity of p from its input and performs a queued jump.
func groundMove(p *Player, speed float32, canJump bool) {
	move := p.moveVector(speed)
	p.velocity = mgl32.Vec3{move.X(), p.velocity.Y(), move.Z()}
	if canJump && p.jumpQueued && p.onGround {
		p.velocity[1] = p.settings.Movement.JumpVelocity
		p.onGround = false
	}
	p.jumpQueued = false
}

// airborne applies gravity until the player lands.
type airborne struct {
	state
}

func newAirborne(p *Player) fsm.State {
	s := &airborne{state: state{p: p}}
	s.Base = fsm.NewBase(StateAirborne, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateWalk, Predicate: func() bool { return p.onGround }},
		}
	})
	return s
}

func (s *airborne) OnStateUpdate(float32) {
	s.p.applyLook()
}

func (s *airborne) OnStateFixedUpdate(dt float32) {
	move := s.p.moveVector(s.p.settings.Movement.WalkSpeed)
	s.p.velocity = mgl32.Vec3{move.X(), s.p.velocity.Y() - s.p.settings.Movement.Gravity*dt, move.Z()}
}

// dead turns the camera toward whatever killed the player and sinks it. It has no transitions: the
// player leaves it through Respawn.
type dead struct {
	state

	from     mgl32.Vec3
	to       mgl32.Vec3
	drop     float32
	duration float32
	elapsed  float32
}

func newDead(p *Player) fsm.State {
	s := &dead{state: state{p: p}}
	s.Base = fsm.NewBase(StateDead, nil)
	return s
}

func (s *dead) CheckPayload(pl fsm.Payload) error {
	_, err := checkPayload[*DeathPayload](StateDead, "*DeathPayload", pl)
	return err
}

func (s *dead) OnStateEnter(pl fsm.Payload) {
	s.Base.OnStateEnter(pl)
	payload := pl.(*DeathPayload)

	s.p.dead = true
	s.p.deathLookAt = payload.LookAt
	s.p.velocity = mgl32.Vec3{}
	s.p.jumpQueued = false
	s.from = s.p.look
	s.drop = payload.Drop
	if s.drop == 0 {
		s.drop = s.p.settings.Death.CameraDrop
	}
	s.to = game.LookAt(s.p.EyePosition().Sub(mgl32.Vec3{0, s.drop, 0}), payload.LookAt)
	s.duration = s.p.settings.Death.FadeDuration
	s.elapsed = 0
}

func (s *dead) OnStateUpdate(dt float32) {
	s.elapsed += dt
	t := float32(1)
	if s.duration > 0 {
		t = game.ClampFloat(s.elapsed/s.duration, 0, 1)
	}
	// Ease out so the camera falls fast and settles slowly.
	t = 1 - (1-t)*(1-t)
	s.p.look = game.LerpLook(s.from, s.to, t)
	s.p.look[2] = 15 * t
	s.p.eyeDrop = s.drop * t
}

func (s *dead) OnStateFixedUpdate(float32) {
	s.p.velocity = mgl32.Vec3{}
}
