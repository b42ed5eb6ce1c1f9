package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/fsm"
	"github.com/oomph-ac/locomotion/game"
)

// ladder climbs the player between the two ends of a ladder. The player is first curved onto the bottom
// of the ladder, facing it.
type ladder struct {
	state
	entry

	payload *LadderPayload
	// progress is the climbed distance from Start.
	progress float32
	length   float32
	jumped   bool
}

func newLadder(p *Player) fsm.State {
	s := &ladder{state: state{p: p}}
	s.Base = fsm.NewBase(StateLadder, func() []fsm.Transition {
		return []fsm.Transition{
			s.toDead(),
			{Target: StateWalk, Predicate: s.reachedTop},
			{Target: StateWalk, Predicate: s.reachedBottom},
			{Target: StateAirborne, Predicate: s.jumpedOff},
		}
	})
	return s
}

func (s *ladder) CheckPayload(pl fsm.Payload) error {
	_, err := checkPayload[*LadderPayload](StateLadder, "*LadderPayload", pl)
	return err
}

func (s *ladder) OnStateEnter(pl fsm.Payload) {
	s.state.OnStateEnter(pl)
	s.payload = pl.(*LadderPayload)
	s.progress = 0
	s.length = s.payload.End.Sub(s.payload.Start).Len()
	s.jumped = false

	arc := s.payload.Arc
	s.begin(s.p, s.payload.Start, mgl32.Vec3{0, s.payload.Facing, 0}, &arc)
	s.p.jumpQueued = false
}

func (s *ladder) OnStateUpdate(dt float32) {
	if !s.update(s.p, dt) {
		return
	}
	s.p.applyLook()
	if s.payload.LimitLook {
		delta := game.WrapYawDelta(s.p.look[1] - s.payload.Facing)
		s.p.look[1] = game.WrapYawDelta(s.payload.Facing + game.ClampFloat(delta, -s.payload.YawLimit, s.payload.YawLimit))
	}
	if s.p.jumpPressed() {
		s.jumped = true
	}
}

func (s *ladder) OnStateFixedUpdate(dt float32) {
	if !s.active() {
		return
	}
	speed := s.p.settings.Movement.ClimbSpeed
	s.progress = game.ClampFloat(s.progress+s.p.input.Move.Y()*speed*dt, 0, s.length)

	dir := s.payload.End.Sub(s.payload.Start).Normalize()
	s.p.position = s.payload.Start.Add(dir.Mul(s.progress))
	s.p.velocity = mgl32.Vec3{}
	s.p.onGround = false
}

func (s *ladder) OnStateExit() {
	switch {
	case s.jumped:
		back := game.DirectionVector(s.payload.Facing, 0).Mul(-s.p.settings.Movement.WalkSpeed * 0.5)
		s.p.velocity = mgl32.Vec3{back.X(), s.p.settings.Movement.JumpVelocity * 0.5, back.Z()}
	case s.atTop():
		s.p.position = s.payload.Exit
		s.p.onGround = true
	default:
		s.p.onGround = true
	}
	s.payload = nil
	s.state.OnStateExit()
}

func (s *ladder) atTop() bool {
	return s.active() && s.progress >= s.length-s.p.settings.Movement.LadderReach
}

func (s *ladder) reachedTop() bool {
	return s.atTop()
}

func (s *ladder) reachedBottom() bool {
	return s.active() && s.progress <= 0 && s.p.input.Move.Y() < 0
}

func (s *ladder) jumpedOff() bool {
	return s.active() && s.jumped
}
